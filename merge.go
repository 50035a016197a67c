package soccerwiki

// MergePlayer combines a roster-scoped player record with that player's
// full profile. Every non-empty profile field overrides the corresponding
// field of a copy of basic; empty profile fields leave the basic value
// untouched. The merge is flat (field-by-field, no recursion) and
// idempotent: merging the same profile into its own result is a no-op.
func MergePlayer(basic Player, full *PlayerProfile) Player {
	merged := basic
	if full == nil {
		return merged
	}

	override(&merged.PlayerID, full.PlayerID)
	override(&merged.FullName, full.FullName)
	override(&merged.ShirtName, full.ShirtName)
	override(&merged.Position, full.Position)
	override(&merged.PositionCode, full.PositionCode)
	override(&merged.Rating, full.Rating)
	override(&merged.Age, full.Age)
	override(&merged.BirthDate, full.BirthDate)
	override(&merged.BirthPlace, full.BirthPlace)
	override(&merged.Nationality, full.Nationality)
	override(&merged.NationalityCode, full.NationalityCode)
	override(&merged.Height, full.Height)
	override(&merged.Weight, full.Weight)
	override(&merged.CurrentClub, full.CurrentClub)
	override(&merged.CurrentClubID, full.CurrentClubID)
	override(&merged.SquadNumber, full.SquadNumber)
	override(&merged.PreferredFoot, full.PreferredFoot)
	override(&merged.HairColour, full.HairColour)
	override(&merged.Hairstyle, full.Hairstyle)
	override(&merged.SkinColour, full.SkinColour)
	override(&merged.FacialHair, full.FacialHair)
	override(&merged.Photo, full.Photo)
	override(&merged.ActionPhoto, full.ActionPhoto)
	override(&merged.PeakPhoto, full.PeakPhoto)
	override(&merged.YouthPhoto, full.YouthPhoto)
	override(&merged.ProfilePhoto, full.ProfilePhoto)
	override(&merged.YouthProfilePhoto, full.YouthProfilePhoto)
	override(&merged.SourceURL, full.SourceURL)

	return merged
}

// override sets dst to src only when src is non-empty.
func override(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
