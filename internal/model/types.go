package model

// Color is the derived color bucket of a card. It is computed from the
// catalog's color identity during import and never supplied directly.
type Color string

const (
	ColorWhite      Color = "White"
	ColorBlue       Color = "Blue"
	ColorBlack      Color = "Black"
	ColorRed        Color = "Red"
	ColorGreen      Color = "Green"
	ColorMulticolor Color = "Multicolor"
	ColorColorless  Color = "Colorless"
	ColorUnknown    Color = "Unknown"
)

func (c Color) String() string {
	return string(c)
}

// ColorFromIdentity derives the color bucket from single-letter color
// identity codes: empty is colorless, more than one is multicolor.
func ColorFromIdentity(identity []string) Color {
	switch {
	case len(identity) == 0:
		return ColorColorless
	case len(identity) > 1:
		return ColorMulticolor
	}

	switch identity[0] {
	case "W":
		return ColorWhite
	case "U":
		return ColorBlue
	case "B":
		return ColorBlack
	case "R":
		return ColorRed
	case "G":
		return ColorGreen
	default:
		return ColorUnknown
	}
}

// Quality is the condition grade of a physical copy.
type Quality string

const (
	QualityNM Quality = "NM"
	QualitySP Quality = "SP"
	QualityHP Quality = "HP"
	QualityMP Quality = "MP"
	QualityDM Quality = "DM"

	// Finer grades allowed by the schema but excluded from the
	// availability aggregation.
	QualityNMMinus Quality = "NM-"
	QualitySPPlus  Quality = "SP+"
	QualitySPMinus Quality = "SP-"
)

// StandardQualities is the five-grade set the inventory aggregation
// treats as sellable stock.
var StandardQualities = []Quality{QualityNM, QualitySP, QualityHP, QualityMP, QualityDM}

func (q Quality) String() string {
	return string(q)
}

// Role is a user's authorization role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleModerator):
		return RoleModerator, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
