// Package sgf implements the SGF FF[4] game record model: properties,
// game trees, and a parser and renderer for Go game collections.
package sgf

import (
	"goatee/types"
)

// Tag is an SGF property identifier such as "B" or "SZ".
type Tag string

// ValueKind says how a property's bracketed payload is encoded.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindNone
	KindMove
	KindCoordList
	KindCoordEList
	KindArrowList
	KindLineList
	KindLabelList
	KindSimpleText
	KindSimpleTextPair
	KindText
	KindReal
	KindDouble
	KindIntegral
	KindColor
	KindGameResult
	KindRuleset
	KindSize
	KindVariationMode
)

// Category groups properties by their role in a node.
type Category int

const (
	CategoryOther Category = iota
	CategoryRoot
	CategoryGameInfo
	CategorySetup
	CategoryMove
	CategoryNodeAnnotation
	CategoryMoveAnnotation
	CategoryMarkup
	CategoryInherited
	CategoryTiming
)

type propInfo struct {
	kind      ValueKind
	category  Category
	inherited bool
}

// propTable is the closed set of recognized properties. Identifiers not
// listed here parse as unknown properties with their payloads preserved.
var propTable = map[Tag]propInfo{
	// Moves, setup, turn.
	"B":  {KindMove, CategoryMove, false},
	"W":  {KindMove, CategoryMove, false},
	"KO": {KindNone, CategoryMove, false},
	"MN": {KindIntegral, CategoryMove, false},
	"AB": {KindCoordList, CategorySetup, false},
	"AW": {KindCoordList, CategorySetup, false},
	"AE": {KindCoordEList, CategorySetup, false},
	"PL": {KindColor, CategorySetup, false},

	// Node annotation.
	"C":  {KindText, CategoryNodeAnnotation, false},
	"DM": {KindDouble, CategoryNodeAnnotation, false},
	"GB": {KindDouble, CategoryNodeAnnotation, false},
	"GW": {KindDouble, CategoryNodeAnnotation, false},
	"HO": {KindDouble, CategoryNodeAnnotation, false},
	"N":  {KindSimpleText, CategoryNodeAnnotation, false},
	"UC": {KindDouble, CategoryNodeAnnotation, false},
	"V":  {KindReal, CategoryNodeAnnotation, false},

	// Move annotation.
	"BM": {KindDouble, CategoryMoveAnnotation, false},
	"DO": {KindNone, CategoryMoveAnnotation, false},
	"IT": {KindNone, CategoryMoveAnnotation, false},
	"TE": {KindDouble, CategoryMoveAnnotation, false},

	// Markup.
	"AR": {KindArrowList, CategoryMarkup, false},
	"CR": {KindCoordList, CategoryMarkup, false},
	"LB": {KindLabelList, CategoryMarkup, false},
	"LN": {KindLineList, CategoryMarkup, false},
	"MA": {KindCoordList, CategoryMarkup, false},
	"SL": {KindCoordList, CategoryMarkup, false},
	"SQ": {KindCoordList, CategoryMarkup, false},
	"TR": {KindCoordList, CategoryMarkup, false},
	"TB": {KindCoordEList, CategoryMarkup, false},
	"TW": {KindCoordEList, CategoryMarkup, false},

	// Inherited board presentation.
	"DD": {KindCoordEList, CategoryInherited, true},
	"VW": {KindCoordEList, CategoryInherited, true},

	// Root.
	"AP": {KindSimpleTextPair, CategoryRoot, false},
	"CA": {KindSimpleText, CategoryRoot, false},
	"FF": {KindIntegral, CategoryRoot, false},
	"GM": {KindIntegral, CategoryRoot, false},
	"ST": {KindVariationMode, CategoryRoot, false},
	"SZ": {KindSize, CategoryRoot, false},

	// Game info.
	"AN": {KindSimpleText, CategoryGameInfo, false},
	"BR": {KindSimpleText, CategoryGameInfo, false},
	"BT": {KindSimpleText, CategoryGameInfo, false},
	"CP": {KindSimpleText, CategoryGameInfo, false},
	"DT": {KindSimpleText, CategoryGameInfo, false},
	"EV": {KindSimpleText, CategoryGameInfo, false},
	"GC": {KindText, CategoryGameInfo, false},
	"GN": {KindSimpleText, CategoryGameInfo, false},
	"ON": {KindSimpleText, CategoryGameInfo, false},
	"OT": {KindSimpleText, CategoryGameInfo, false},
	"PB": {KindSimpleText, CategoryGameInfo, false},
	"PC": {KindSimpleText, CategoryGameInfo, false},
	"PW": {KindSimpleText, CategoryGameInfo, false},
	"RE": {KindGameResult, CategoryGameInfo, false},
	"RO": {KindSimpleText, CategoryGameInfo, false},
	"RU": {KindRuleset, CategoryGameInfo, false},
	"SO": {KindSimpleText, CategoryGameInfo, false},
	"TM": {KindReal, CategoryGameInfo, false},
	"US": {KindSimpleText, CategoryGameInfo, false},
	"WR": {KindSimpleText, CategoryGameInfo, false},
	"HA": {KindIntegral, CategoryGameInfo, false},
	"KM": {KindReal, CategoryGameInfo, false},

	// Timing.
	"BL": {KindReal, CategoryTiming, false},
	"OB": {KindIntegral, CategoryTiming, false},
	"OW": {KindIntegral, CategoryTiming, false},
	"WL": {KindReal, CategoryTiming, false},
}

// Kind returns the payload encoding for the tag, KindUnknown for
// unrecognized identifiers.
func (t Tag) Kind() ValueKind {
	return propTable[t].kind
}

// Category returns the tag's property category.
func (t Tag) Category() Category {
	return propTable[t].category
}

// Inherited reports whether the property's effect persists down the tree.
func (t Tag) Inherited() bool {
	return propTable[t].inherited
}

// Known reports whether the tag is part of the recognized set.
func (t Tag) Known() bool {
	_, ok := propTable[t]
	return ok
}

// Property is a single tag-value pair. Exactly one payload group is
// meaningful, selected by Tag.Kind().
type Property struct {
	Tag Tag

	Move       *types.Coord        // move payloads; nil is a pass
	Coords     types.CoordList     // point-list payloads
	Arrows     []types.Arrow       // AR
	Lines      []types.Line        // LN
	Labels     []types.Label       // LB
	Text       string              // text and simple-text payloads
	Pair       [2]string           // AP name:version
	Real       float64             // real payloads
	Double     types.Double        // double payloads
	Int        int                 // integral payloads
	Color      types.Color         // PL
	Result     types.GameResult    // RE
	Rules      types.Ruleset       // RU
	Width      int                 // SZ
	Height     int                 // SZ
	Variations types.VariationMode // ST

	// Raw holds the still-escaped payloads of an unknown property so the
	// source bytes survive a round trip.
	Raw []string
}

// MoveProp builds a B or W property. A nil coordinate is a pass.
func MoveProp(c types.Color, at *types.Coord) *Property {
	tag := Tag("B")
	if c == types.White {
		tag = "W"
	}
	return &Property{Tag: tag, Move: at}
}

// PassProp builds a pass move for the color.
func PassProp(c types.Color) *Property {
	return MoveProp(c, nil)
}

// SetupProp builds an AB, AW or AE property.
func SetupProp(tag Tag, coords types.CoordList) *Property {
	return &Property{Tag: tag, Coords: coords}
}

// MarkProp builds the markup property for a mark kind over the points.
func MarkProp(m types.Mark, coords types.CoordList) *Property {
	return &Property{Tag: MarkTag(m), Coords: coords}
}

// CommentProp builds a C property.
func CommentProp(text string) *Property {
	return &Property{Tag: "C", Text: text}
}

// SimpleTextProp builds a simple-text property such as PB or DT.
func SimpleTextProp(tag Tag, text string) *Property {
	return &Property{Tag: tag, Text: text}
}

// IntProp builds an integral property such as MN or HA.
func IntProp(tag Tag, n int) *Property {
	return &Property{Tag: tag, Int: n}
}

// RealProp builds a real property such as KM.
func RealProp(tag Tag, v float64) *Property {
	return &Property{Tag: tag, Real: v}
}

// SizeProp builds an SZ property.
func SizeProp(width, height int) *Property {
	return &Property{Tag: "SZ", Width: width, Height: height}
}

// PlayerTurnProp builds a PL property.
func PlayerTurnProp(c types.Color) *Property {
	return &Property{Tag: "PL", Color: c}
}

// ResultProp builds an RE property.
func ResultProp(r types.GameResult) *Property {
	return &Property{Tag: "RE", Result: r}
}

// LabelProp builds an LB property.
func LabelProp(labels ...types.Label) *Property {
	return &Property{Tag: "LB", Labels: labels}
}

// UnknownProp builds a property for an unrecognized identifier. Values are
// kept verbatim, in their escaped source form.
func UnknownProp(name string, values ...string) *Property {
	return &Property{Tag: Tag(name), Raw: values}
}

// MoveColor returns the color of a B or W property.
func (p *Property) MoveColor() (types.Color, bool) {
	switch p.Tag {
	case "B":
		return types.Black, true
	case "W":
		return types.White, true
	}
	return types.NoColor, false
}

// MarkTag maps a mark kind to its markup property tag.
func MarkTag(m types.Mark) Tag {
	switch m {
	case types.MarkCircle:
		return "CR"
	case types.MarkSquare:
		return "SQ"
	case types.MarkTriangle:
		return "TR"
	case types.MarkX:
		return "MA"
	case types.MarkSelected:
		return "SL"
	}
	return ""
}

// TagMark maps a markup property tag to its mark kind.
func TagMark(t Tag) (types.Mark, bool) {
	switch t {
	case "CR":
		return types.MarkCircle, true
	case "SQ":
		return types.MarkSquare, true
	case "TR":
		return types.MarkTriangle, true
	case "MA":
		return types.MarkX, true
	case "SL":
		return types.MarkSelected, true
	}
	return types.MarkNone, false
}

func (p *Property) String() string {
	values, err := renderValues(p)
	if err != nil {
		return string(p.Tag) + "[?]"
	}
	s := string(p.Tag)
	for _, v := range values {
		s += "[" + v + "]"
	}
	return s
}
