package goquery_test

import (
	"testing"

	"github.com/CarlosDimare/soccerwiki/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playerSourceURL = "https://es.soccerwiki.org/player.php?pid=1457"

func TestParsePlayer(t *testing.T) {
	t.Parallel()

	t.Run("extracts every labeled field", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>L. Messi - Soccer Wiki</title></head><body>
			<div class="player-info-corporate">
				<div class="block-number"><span>10</span></div>
				<div class="player-img"><img data-src="https://cdn.example.com/player/1457.png"></div>
				<p class="player-info-subtitle">Nombre completo: Lionel Andrés Messi</p>
				<p class="player-info-subtitle">Nombre de la camisa: MESSI</p>
				<p class="player-info-subtitle">Posición: <span title="Delantero">DEL</span></p>
				<p class="player-info-subtitle">Valoración: 94</p>
				<p class="player-info-subtitle">Edad: 38 (Jun 24, 1987)</p>
				<p class="player-info-subtitle">Nacionalidad: <span class="flag-icon flag-icon-ar"></span> Argentina <a href="/country.php?rid=11">Argentina</a></p>
				<p class="player-info-subtitle">Altura: 170 cm</p>
				<p class="player-info-subtitle">Peso: 72 kg</p>
				<p class="player-info-subtitle">Club: <a href="/squad.php?clubid=9">Inter Miami</a></p>
				<p class="player-info-subtitle">Pie preferido: Izquierdo</p>
				<p class="player-info-subtitle">Hair Colour: Brown</p>
				<p class="player-info-subtitle">Hairstyle: Short</p>
				<p class="player-info-subtitle">Skin Colour: Medium</p>
				<p class="player-info-subtitle">Facial Hair: Beard</p>
				<div class="player-info-figure"><img src="https://cdn.example.com/action/1457.png"></div>
				<div class="player-info-figure"><img src="https://cdn.example.com/peak/1457.png"></div>
				<div class="player-info-figure"><img src="https://cdn.example.com/youth/1457.png"></div>
				<div class="player-info-figure"><img src="https://cdn.example.com/profile/1457.png"></div>
				<div class="player-info-figure"><img src="https://cdn.example.com/youth-profile/1457.png"></div>
			</div>
		</body></html>`

		p, err := goquery.NewParser("")
		require.NoError(t, err)

		profile, err := p.ParsePlayer(html, playerSourceURL)

		require.NoError(t, err)
		assert.Equal(t, "1457", profile.PlayerID)
		assert.Equal(t, playerSourceURL, profile.SourceURL)
		assert.Equal(t, "Lionel Andrés Messi", profile.FullName)
		assert.Equal(t, "MESSI", profile.ShirtName)
		assert.Equal(t, "Delantero", profile.Position)
		assert.Equal(t, "DEL", profile.PositionCode)
		assert.Equal(t, "94", profile.Rating)
		assert.Equal(t, "38", profile.Age)
		assert.Equal(t, "Jun 24, 1987", profile.BirthDate)
		assert.Equal(t, "Argentina", profile.Nationality)
		assert.Equal(t, "AR", profile.NationalityCode)
		assert.Equal(t, "170", profile.Height)
		assert.Equal(t, "72", profile.Weight)
		assert.Equal(t, "Inter Miami", profile.CurrentClub)
		assert.Equal(t, "9", profile.CurrentClubID)
		assert.Equal(t, "10", profile.SquadNumber)
		assert.Equal(t, "Izquierdo", profile.PreferredFoot)
		assert.Equal(t, "Brown", profile.HairColour)
		assert.Equal(t, "Short", profile.Hairstyle)
		assert.Equal(t, "Medium", profile.SkinColour)
		assert.Equal(t, "Beard", profile.FacialHair)
		assert.Equal(t, "https://cdn.example.com/player/1457.png", profile.Photo)
		assert.Equal(t, "https://cdn.example.com/action/1457.png", profile.ActionPhoto)
		assert.Equal(t, "https://cdn.example.com/peak/1457.png", profile.PeakPhoto)
		assert.Equal(t, "https://cdn.example.com/youth/1457.png", profile.YouthPhoto)
		assert.Equal(t, "https://cdn.example.com/profile/1457.png", profile.ProfilePhoto)
		assert.Equal(t, "https://cdn.example.com/youth-profile/1457.png", profile.YouthProfilePhoto)
	})

	t.Run("implausible height is dropped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="player-info-main">
				<p class="player-info-subtitle">Altura: 400</p>
			</div>
		</body></html>`

		p, err := goquery.NewParser("")
		require.NoError(t, err)

		profile, err := p.ParsePlayer(html, playerSourceURL)

		require.NoError(t, err)
		assert.Empty(t, profile.Height)
	})

	t.Run("rating above the profile cap is dropped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="player-info-main">
				<p class="player-info-subtitle">Valoración: 100</p>
			</div>
		</body></html>`

		p, err := goquery.NewParser("")
		require.NoError(t, err)

		profile, err := p.ParsePlayer(html, playerSourceURL)

		require.NoError(t, err)
		assert.Empty(t, profile.Rating)
	})

	t.Run("full name falls back to the page title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>John Doe - Soccer Wiki: Profile</title></head><body>
			<div class="player-info-main"></div>
		</body></html>`

		p, err := goquery.NewParser("")
		require.NoError(t, err)

		profile, err := p.ParsePlayer(html, playerSourceURL)

		require.NoError(t, err)
		assert.Equal(t, "John Doe", profile.FullName)
	})

	t.Run("document fallback fills empty fields only", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="player-info-main">
				<p class="player-info-subtitle">Altura: 170 cm</p>
			</div>
			<aside>
				<p>Mide 190 cm y pesa 85 kg. Tiene 27 años. Pie: Izquierdo</p>
				<span class="flag-icon flag-icon-br"></span>
				<a href="/squad.php?clubid=55">Santos FC</a>
			</aside>
		</body></html>`

		p, err := goquery.NewParser("")
		require.NoError(t, err)

		profile, err := p.ParsePlayer(html, playerSourceURL)

		require.NoError(t, err)

		// Height came from the primary pass; the fallback must not touch it.
		assert.Equal(t, "170", profile.Height)

		// The rest was only present document-wide.
		assert.Equal(t, "85", profile.Weight)
		assert.Equal(t, "27", profile.Age)
		assert.Equal(t, "Izquierdo", profile.PreferredFoot)
		assert.Equal(t, "BR", profile.NationalityCode)
		assert.Equal(t, "Santos FC", profile.CurrentClub)
		assert.Equal(t, "55", profile.CurrentClubID)
	})

	t.Run("photo falls back to the player id asset path", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="player-info-main"></div>
			<img src="https://cdn.example.com/img/player/1457/full.png">
		</body></html>`

		p, err := goquery.NewParser("")
		require.NoError(t, err)

		profile, err := p.ParsePlayer(html, playerSourceURL)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/img/player/1457/full.png", profile.Photo)
	})
}

func TestPlayerProfile_DisplayName(t *testing.T) {
	t.Parallel()

	p, err := goquery.NewParser("")
	require.NoError(t, err)

	profile, err := p.ParsePlayer("<html><head><title>A. Name - Soccer Wiki</title></head><body></body></html>", playerSourceURL)

	require.NoError(t, err)
	assert.Equal(t, "A. Name", profile.DisplayName())
}
