package game

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background
	BackgroundColor string
	BorderColor     string

	// Player
	PlayerColor string
	PlayerGlow  string

	// Projectiles
	ProjectileColor string
	ProjectileGlow  string

	// Enemies
	EnemyColor string
	EnemyGlow  string

	// Virtual sticks
	StickBaseColor string
	StickKnobColor string

	// UI/HUD
	TextPrimaryColor   string
	TextSecondaryColor string
	TextGlow           string
	GameOverColor      string

	// Fonts
	TextFont     string
	BannerFont   string
	InstructFont string

	// Shadow/glow blur values
	DefaultShadowBlur float64
	PlayerShadowBlur  float64
}{
	BackgroundColor: "#222",
	BorderColor:     "#fff",

	PlayerColor: "#9F0",
	PlayerGlow:  "#9F0",

	ProjectileColor: "#CF0",
	ProjectileGlow:  "#CF0",

	EnemyColor: "#62F",
	EnemyGlow:  "#62F",

	StickBaseColor: "rgba(255,255,255,.15)",
	StickKnobColor: "rgba(255,255,255,.45)",

	TextPrimaryColor:   "#62F",
	TextSecondaryColor: "#FFF",
	TextGlow:           "#FFF",
	GameOverColor:      "#F63",

	TextFont:     "Consolas,monospace",
	BannerFont:   "bold 64px Consolas,monospace",
	InstructFont: "16px sans-serif",

	DefaultShadowBlur: 6.0,
	PlayerShadowBlur:  12.0,
}
