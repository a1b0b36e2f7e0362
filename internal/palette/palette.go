// Package palette derives a complete named color palette from one base
// color. Derivation is pure: identical input always yields identical output.
package palette

import (
	"math"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
)

// Role is a semantic color slot consumed by the rendering layer
type Role int

const (
	Primary Role = iota
	PrimaryForeground
	Secondary
	Accent
	Border
	Ring

	roleCount = int(Ring) + 1
)

var roleVarNames = [roleCount]string{
	Primary:           "--primary",
	PrimaryForeground: "--primary-foreground",
	Secondary:         "--secondary",
	Accent:            "--accent",
	Border:            "--border",
	Ring:              "--ring",
}

// AllRoles returns every role in publish order
func AllRoles() []Role {
	roles := make([]Role, roleCount)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// VarName returns the style variable key for the role
func (r Role) VarName() string {
	if r < 0 || int(r) >= roleCount {
		return ""
	}
	return roleVarNames[r]
}

func (r Role) String() string {
	name := r.VarName()
	if name == "" {
		return "role(invalid)"
	}
	return name[2:]
}

// Foregrounds for the primary color
var (
	LightForeground = color.HSL{H: 0, S: 0, L: 98}
	DarkForeground  = color.HSL{H: 0, S: 0, L: 2}
)

// Palette is the full set of role and category colors derived from Base
type Palette struct {
	Base       color.HSL
	Roles      [roleCount]color.HSL
	Categories [categoryCount]color.HSL
}

// Var is one style variable assignment
type Var struct {
	Key   string
	Value string
}

// Derive computes the palette for base. Base is quantized to whole
// degrees/percents first so the output matches its "H S% L%" form.
// Subtractive offsets are floored before additive offsets are capped.
func Derive(base color.HSL) Palette {
	b := base.Rounded()
	h, s, l := b.H, b.S, b.L

	p := Palette{Base: b}

	// The focus ring matches primary, not border
	primary := color.HSL{H: h, S: s, L: math.Max(l-10, 10)}
	p.Roles[Primary] = primary
	p.Roles[Ring] = primary

	if l > 50 {
		p.Roles[PrimaryForeground] = LightForeground
	} else {
		p.Roles[PrimaryForeground] = DarkForeground
	}

	p.Roles[Secondary] = color.HSL{H: h, S: math.Max(s-20, 10), L: math.Min(l+20, 90)}
	p.Roles[Accent] = color.HSL{H: h, S: math.Max(s-10, 5), L: math.Min(l+15, 85)}
	p.Roles[Border] = color.HSL{H: h, S: math.Max(s-30, 5), L: math.Min(l+30, 80)}

	catS := math.Max(s-10, 20)
	catL := math.Min(l+10, 80)
	for i := range p.Categories {
		p.Categories[i] = color.HSL{
			H: math.Mod(h+float64(Category(i).HueOffset()), 360),
			S: catS,
			L: catL,
		}
	}

	return p
}

// DeriveHex parses hex and derives its palette
func DeriveHex(hex string) (Palette, error) {
	base, err := color.HexToHSL(hex)
	if err != nil {
		return Palette{}, err
	}
	return Derive(base), nil
}

// Role returns the color assigned to r
func (p Palette) Role(r Role) color.HSL {
	return p.Roles[r]
}

// Category returns the color assigned to c
func (p Palette) Category(c Category) color.HSL {
	return p.Categories[c]
}

// Vars returns every variable the palette publishes, roles first then
// categories, in table order.
func (p Palette) Vars() []Var {
	vars := make([]Var, 0, roleCount+categoryCount)
	for i, v := range p.Roles {
		vars = append(vars, Var{Key: Role(i).VarName(), Value: v.String()})
	}
	for i, v := range p.Categories {
		vars = append(vars, Var{Key: Category(i).VarName(), Value: v.String()})
	}
	return vars
}

// VarNames lists every key a palette can publish
func VarNames() []string {
	names := make([]string, 0, roleCount+categoryCount)
	for _, r := range AllRoles() {
		names = append(names, r.VarName())
	}
	for _, c := range AllCategories() {
		names = append(names, c.VarName())
	}
	return names
}
