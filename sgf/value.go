package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"goatee/types"
)

// valueType is the codec for one payload kind: parse fills the property
// from raw bracket contents, render produces bracket contents back. Raw
// contents are still escaped; each codec owns its own unescaping.
type valueType struct {
	multi  bool
	parse  func(p *Property, values []string) error
	render func(p *Property) ([]string, error)
}

var valueTypes map[ValueKind]valueType

func init() {
	valueTypes = map[ValueKind]valueType{
		KindNone:           {parse: parseNone, render: renderNone},
		KindMove:           {parse: parseMove, render: renderMove},
		KindCoordList:      {multi: true, parse: parseCoordList, render: renderCoordList},
		KindCoordEList:     {multi: true, parse: parseCoordEList, render: renderCoordEList},
		KindArrowList:      {multi: true, parse: parseArrowList, render: renderArrowList},
		KindLineList:       {multi: true, parse: parseLineList, render: renderLineList},
		KindLabelList:      {multi: true, parse: parseLabelList, render: renderLabelList},
		KindSimpleText:     {parse: parseSimpleText, render: renderSimpleText},
		KindSimpleTextPair: {parse: parseSimpleTextPair, render: renderSimpleTextPair},
		KindText:           {parse: parseText, render: renderText},
		KindReal:           {parse: parseReal, render: renderReal},
		KindDouble:         {parse: parseDouble, render: renderDouble},
		KindIntegral:       {parse: parseIntegral, render: renderIntegral},
		KindColor:          {parse: parseColor, render: renderColor},
		KindGameResult:     {parse: parseGameResult, render: renderGameResult},
		KindRuleset:        {parse: parseRuleset, render: renderRuleset},
		KindSize:           {parse: parseSize, render: renderSize},
		KindVariationMode:  {parse: parseVariationMode, render: renderVariationMode},
		KindUnknown:        {multi: true, parse: parseUnknown, render: renderUnknown},
	}
}

// parseValues decodes the raw bracket contents into the property.
func parseValues(p *Property, values []string) error {
	vt := valueTypes[p.Tag.Kind()]
	if !vt.multi && len(values) != 1 {
		return fmt.Errorf("property %s takes a single value, got %d", p.Tag, len(values))
	}
	return vt.parse(p, values)
}

// renderValues encodes the property payload as bracket contents.
func renderValues(p *Property) ([]string, error) {
	return valueTypes[p.Tag.Kind()].render(p)
}

// splitCompose splits a composed value at its first unescaped ':'.
func splitCompose(s string) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ':':
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func parseNone(p *Property, values []string) error {
	if values[0] != "" {
		return fmt.Errorf("property %s takes an empty value", p.Tag)
	}
	return nil
}

func renderNone(p *Property) ([]string, error) {
	return []string{""}, nil
}

func parseMove(p *Property, values []string) error {
	if values[0] == "" {
		p.Move = nil
		return nil
	}
	c, err := types.ParseCoord(values[0])
	if err != nil {
		return err
	}
	p.Move = &c
	return nil
}

func renderMove(p *Property) ([]string, error) {
	if p.Move == nil {
		return []string{""}, nil
	}
	s, err := p.Move.SGF()
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func parseCoordSpan(s string) (types.CoordSpan, error) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		from, err := types.ParseCoord(s[:i])
		if err != nil {
			return types.CoordSpan{}, err
		}
		to, err := types.ParseCoord(s[i+1:])
		if err != nil {
			return types.CoordSpan{}, err
		}
		return types.CoordSpan{From: from, To: to}, nil
	}
	c, err := types.ParseCoord(s)
	if err != nil {
		return types.CoordSpan{}, err
	}
	return types.Point(c), nil
}

func renderCoordSpan(span types.CoordSpan) (string, error) {
	from, err := span.From.SGF()
	if err != nil {
		return "", err
	}
	if span.IsPoint() {
		return from, nil
	}
	to, err := span.To.SGF()
	if err != nil {
		return "", err
	}
	return from + ":" + to, nil
}

func parseCoordList(p *Property, values []string) error {
	for _, v := range values {
		span, err := parseCoordSpan(v)
		if err != nil {
			return fmt.Errorf("property %s: %v", p.Tag, err)
		}
		p.Coords = append(p.Coords, span)
	}
	return nil
}

func renderCoordList(p *Property) ([]string, error) {
	values := make([]string, 0, len(p.Coords))
	for _, span := range p.Coords {
		s, err := renderCoordSpan(span)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	return values, nil
}

// parseCoordEList is parseCoordList, except that a single empty value is
// the legal whole-board form and yields an empty list.
func parseCoordEList(p *Property, values []string) error {
	if len(values) == 1 && values[0] == "" {
		p.Coords = nil
		return nil
	}
	return parseCoordList(p, values)
}

func renderCoordEList(p *Property) ([]string, error) {
	if len(p.Coords) == 0 {
		return []string{""}, nil
	}
	return renderCoordList(p)
}

func parseCoordPair(tag Tag, s string) (types.Coord, types.Coord, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return types.Coord{}, types.Coord{}, fmt.Errorf("property %s: missing ':' in %q", tag, s)
	}
	a, err := types.ParseCoord(s[:i])
	if err != nil {
		return types.Coord{}, types.Coord{}, fmt.Errorf("property %s: %v", tag, err)
	}
	b, err := types.ParseCoord(s[i+1:])
	if err != nil {
		return types.Coord{}, types.Coord{}, fmt.Errorf("property %s: %v", tag, err)
	}
	return a, b, nil
}

func renderCoordPair(a, b types.Coord) (string, error) {
	as, err := a.SGF()
	if err != nil {
		return "", err
	}
	bs, err := b.SGF()
	if err != nil {
		return "", err
	}
	return as + ":" + bs, nil
}

func parseArrowList(p *Property, values []string) error {
	for _, v := range values {
		from, to, err := parseCoordPair(p.Tag, v)
		if err != nil {
			return err
		}
		p.Arrows = append(p.Arrows, types.Arrow{From: from, To: to})
	}
	return nil
}

func renderArrowList(p *Property) ([]string, error) {
	values := make([]string, 0, len(p.Arrows))
	for _, a := range p.Arrows {
		s, err := renderCoordPair(a.From, a.To)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	return values, nil
}

func parseLineList(p *Property, values []string) error {
	for _, v := range values {
		a, b, err := parseCoordPair(p.Tag, v)
		if err != nil {
			return err
		}
		p.Lines = append(p.Lines, types.Line{A: a, B: b})
	}
	return nil
}

func renderLineList(p *Property) ([]string, error) {
	values := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		s, err := renderCoordPair(l.A, l.B)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	return values, nil
}

func parseLabelList(p *Property, values []string) error {
	for _, v := range values {
		coord, text, ok := splitCompose(v)
		if !ok {
			return fmt.Errorf("property %s: missing ':' in %q", p.Tag, v)
		}
		at, err := types.ParseCoord(coord)
		if err != nil {
			return fmt.Errorf("property %s: %v", p.Tag, err)
		}
		p.Labels = append(p.Labels, types.Label{At: at, Text: types.UnescapeSimpleText(text)})
	}
	return nil
}

func renderLabelList(p *Property) ([]string, error) {
	values := make([]string, 0, len(p.Labels))
	for _, l := range p.Labels {
		at, err := l.At.SGF()
		if err != nil {
			return nil, err
		}
		values = append(values, at+":"+types.EscapeText(l.Text, true))
	}
	return values, nil
}

func parseSimpleText(p *Property, values []string) error {
	p.Text = types.UnescapeSimpleText(values[0])
	return nil
}

func renderSimpleText(p *Property) ([]string, error) {
	return []string{types.EscapeText(p.Text, false)}, nil
}

func parseSimpleTextPair(p *Property, values []string) error {
	a, b, ok := splitCompose(values[0])
	if !ok {
		return fmt.Errorf("property %s: missing ':' in %q", p.Tag, values[0])
	}
	p.Pair[0] = types.UnescapeSimpleText(a)
	p.Pair[1] = types.UnescapeSimpleText(b)
	return nil
}

func renderSimpleTextPair(p *Property) ([]string, error) {
	return []string{types.EscapeText(p.Pair[0], true) + ":" + types.EscapeText(p.Pair[1], true)}, nil
}

func parseText(p *Property, values []string) error {
	p.Text = types.UnescapeText(values[0])
	return nil
}

func renderText(p *Property) ([]string, error) {
	return []string{types.EscapeText(p.Text, false)}, nil
}

func parseReal(p *Property, values []string) error {
	v, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return fmt.Errorf("property %s: invalid real %q", p.Tag, values[0])
	}
	p.Real = v
	return nil
}

func renderReal(p *Property) ([]string, error) {
	return []string{strconv.FormatFloat(p.Real, 'f', -1, 64)}, nil
}

func parseDouble(p *Property, values []string) error {
	switch values[0] {
	case "1":
		p.Double = types.DoubleNormal
	case "2":
		p.Double = types.DoubleEmphasized
	default:
		return fmt.Errorf("property %s: invalid double %q", p.Tag, values[0])
	}
	return nil
}

func renderDouble(p *Property) ([]string, error) {
	if !p.Double.Valid() {
		return nil, fmt.Errorf("property %s: invalid double %d", p.Tag, p.Double)
	}
	return []string{strconv.Itoa(int(p.Double))}, nil
}

func parseIntegral(p *Property, values []string) error {
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("property %s: invalid integer %q", p.Tag, values[0])
	}
	p.Int = v
	return nil
}

func renderIntegral(p *Property) ([]string, error) {
	return []string{strconv.Itoa(p.Int)}, nil
}

func parseColor(p *Property, values []string) error {
	c, err := types.ParseColor(values[0])
	if err != nil {
		return fmt.Errorf("property %s: %v", p.Tag, err)
	}
	p.Color = c
	return nil
}

func renderColor(p *Property) ([]string, error) {
	if p.Color != types.Black && p.Color != types.White {
		return nil, fmt.Errorf("property %s: no color set", p.Tag)
	}
	return []string{p.Color.SGF()}, nil
}

func parseGameResult(p *Property, values []string) error {
	r, err := types.ParseGameResult(types.UnescapeSimpleText(values[0]))
	if err != nil {
		return fmt.Errorf("property %s: %v", p.Tag, err)
	}
	p.Result = r
	return nil
}

func renderGameResult(p *Property) ([]string, error) {
	return []string{p.Result.String()}, nil
}

func parseRuleset(p *Property, values []string) error {
	p.Rules = types.ParseRuleset(types.UnescapeSimpleText(values[0]))
	return nil
}

func renderRuleset(p *Property) ([]string, error) {
	return []string{types.EscapeText(string(p.Rules), false)}, nil
}

func parseSize(p *Property, values []string) error {
	w := values[0]
	h := w
	if i := strings.IndexByte(w, ':'); i >= 0 {
		w, h = w[:i], w[i+1:]
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("property %s: invalid size %q", p.Tag, values[0])
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("property %s: invalid size %q", p.Tag, values[0])
	}
	if width < 1 || width > types.MaxCoord || height < 1 || height > types.MaxCoord {
		return fmt.Errorf("property %s: size %dx%d out of range", p.Tag, width, height)
	}
	p.Width, p.Height = width, height
	return nil
}

func renderSize(p *Property) ([]string, error) {
	if p.Width < 1 || p.Width > types.MaxCoord || p.Height < 1 || p.Height > types.MaxCoord {
		return nil, fmt.Errorf("property %s: size %dx%d out of range", p.Tag, p.Width, p.Height)
	}
	if p.Width == p.Height {
		return []string{strconv.Itoa(p.Width)}, nil
	}
	return []string{strconv.Itoa(p.Width) + ":" + strconv.Itoa(p.Height)}, nil
}

func parseVariationMode(p *Property, values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("property %s: invalid mode %q", p.Tag, values[0])
	}
	m, err := types.ParseVariationMode(n)
	if err != nil {
		return fmt.Errorf("property %s: %v", p.Tag, err)
	}
	p.Variations = m
	return nil
}

func renderVariationMode(p *Property) ([]string, error) {
	return []string{strconv.Itoa(p.Variations.Int())}, nil
}

func parseUnknown(p *Property, values []string) error {
	p.Raw = append([]string(nil), values...)
	return nil
}

func renderUnknown(p *Property) ([]string, error) {
	if len(p.Raw) == 0 {
		return []string{""}, nil
	}
	return p.Raw, nil
}
