package entity

// LayerRect is a pixel rectangle on the profile card canvas.
type LayerRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Card geometry. Static for the lifetime of the process; positions were tuned
// against the production background image and must not drift from it.
var (
	OutfitParts = [7]LayerRect{
		{X: 110, Y: 90, W: 120, H: 120},
		{X: 485, Y: 85, W: 120, H: 120},
		{X: 570, Y: 215, W: 120, H: 120},
		{X: 32, Y: 220, W: 120, H: 120},
		{X: 27, Y: 395, W: 120, H: 120},
		{X: 115, Y: 520, W: 120, H: 120},
		{X: 492, Y: 537, W: 100, H: 100},
	}

	AvatarRect = LayerRect{X: 315, Y: 300, W: 90, H: 90}

	CharacterRect = LayerRect{X: 95, Y: 80, W: 525, H: 625}

	WeaponRects = []LayerRect{
		{X: 465, Y: 395, W: 250, H: 125},
	}
)

// Outfit slot matching rules: slot i takes the first equipped outfit ID whose
// decimal representation starts with OutfitPrefixes[i]; OutfitFallbacks[i]
// fills the slot when nothing matches.
var (
	OutfitPrefixes  = [7]string{"211", "214", "211", "203", "204", "205", "203"}
	OutfitFallbacks = [7]int64{211000000, 214000000, 208000000, 203000000, 204000000, 205000000, 212000000}
)

// OutfitIconSize is the edge length outfit icons are prefetched at before
// being resized into their slot rectangles.
const OutfitIconSize = 150
