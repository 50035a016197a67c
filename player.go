package soccerwiki

// Player is the canonical player record. A roster page populates the
// basic subset (squad number through photo); merging in a PlayerProfile
// fills the remainder. Absent fields are empty strings; the site's
// markup is too irregular to promise more.
type Player struct {
	SquadNumber string `json:"squadNumber"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	Age         string `json:"age"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	Foot        string `json:"foot"`
	BirthDate   string `json:"birthDate"`
	Rating      string `json:"rating"`
	Photo       string `json:"photo"`
	PlayerID    string `json:"playerId"`

	// Profile-only fields, set after a merge.
	FullName          string `json:"fullName,omitempty"`
	ShirtName         string `json:"shirtName,omitempty"`
	PositionCode      string `json:"positionCode,omitempty"`
	BirthPlace        string `json:"birthPlace,omitempty"`
	NationalityCode   string `json:"nationalityCode,omitempty"`
	CurrentClub       string `json:"currentClub,omitempty"`
	CurrentClubID     string `json:"currentClubId,omitempty"`
	PreferredFoot     string `json:"preferredFoot,omitempty"`
	HairColour        string `json:"hairColour,omitempty"`
	Hairstyle         string `json:"hairstyle,omitempty"`
	SkinColour        string `json:"skinColour,omitempty"`
	FacialHair        string `json:"facialHair,omitempty"`
	ActionPhoto       string `json:"actionPhoto,omitempty"`
	PeakPhoto         string `json:"peakPhoto,omitempty"`
	YouthPhoto        string `json:"youthPhoto,omitempty"`
	ProfilePhoto      string `json:"profilePhoto,omitempty"`
	YouthProfilePhoto string `json:"youthProfilePhoto,omitempty"`
	SourceURL         string `json:"url,omitempty"`
}

// Accepted reports whether the record carries the two required fields.
// Rows failing this are dropped by the roster assembler, never emitted
// as partial records.
func (p *Player) Accepted() bool {
	return p.Name != "" && p.PlayerID != ""
}

// PlayerProfile is the record assembled from a single player.php page.
// It is a superset of the roster-scoped fields; empty values mean the
// page did not expose the field.
type PlayerProfile struct {
	PlayerID     string `json:"playerId"`
	FullName     string `json:"fullName"`
	ShirtName    string `json:"shirtName"`
	Position     string `json:"position"`
	PositionCode string `json:"positionCode"`
	Rating       string `json:"rating"`

	Age        string `json:"age"`
	BirthDate  string `json:"birthDate"`
	BirthPlace string `json:"birthPlace"`

	Nationality     string `json:"nationality"`
	NationalityCode string `json:"nationalityCode"`

	Height string `json:"height"` // cm, bare number
	Weight string `json:"weight"` // kg, bare number

	CurrentClub   string `json:"currentClub"`
	CurrentClubID string `json:"currentClubId"`
	SquadNumber   string `json:"squadNumber"`

	PreferredFoot string `json:"preferredFoot"`
	HairColour    string `json:"hairColour"`
	Hairstyle     string `json:"hairstyle"`
	SkinColour    string `json:"skinColour"`
	FacialHair    string `json:"facialHair"`

	Photo             string `json:"photo"`
	ActionPhoto       string `json:"actionPhoto"`
	PeakPhoto         string `json:"peakPhoto"`
	YouthPhoto        string `json:"youthPhoto"`
	ProfilePhoto      string `json:"profilePhoto"`
	YouthProfilePhoto string `json:"youthProfilePhoto"`

	SourceURL string `json:"url"`
}

// DisplayName returns the profile's full name, falling back through the
// shirt name for records where the labeled block was missing.
func (p *PlayerProfile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.ShirtName
}
