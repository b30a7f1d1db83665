package decl

import (
	"strings"

	"github.com/viant/csbind/shared"
)

type (
	//Type represents type expression
	Type interface {
		Pos() shared.Position
		//Kind returns construct name used in diagnostics
		Kind() string
		String() string
		typ()
	}

	//Path represents (possibly qualified, possibly generic) named type: a::b::Name<T>
	Path struct {
		Position shared.Position
		Segments []*Segment
	}

	//Segment represents path segment
	Segment struct {
		Name string
		Args []*GenericArg
	}

	//GenericArg represents angle bracketed argument
	GenericArg struct {
		Type     Type
		Lifetime string
		Const    string
	}

	//Pointer represents *const T or *mut T
	Pointer struct {
		Position shared.Position
		Mutable  bool
		Elem     Type
	}

	//Reference represents &T, &mut T or &'a T
	Reference struct {
		Position shared.Position
		Lifetime string
		Mutable  bool
		Elem     Type
	}

	//Array represents [T; N]
	Array struct {
		Position shared.Position
		Elem     Type
		Len      string
	}

	//Slice represents [T]
	Slice struct {
		Position shared.Position
		Elem     Type
	}

	//Tuple represents (A, B); zero elements represents unit type
	Tuple struct {
		Position shared.Position
		Elems    []Type
	}

	//BareFn represents fn(A) -> B pointer type
	BareFn struct {
		Position shared.Position
		ABI      string
		Params   []Type
		Result   Type
	}

	//TraitObject represents dyn Trait
	TraitObject struct {
		Position shared.Position
		Bounds   string
	}

	//ImplTrait represents impl Trait
	ImplTrait struct {
		Position shared.Position
		Bounds   string
	}

	//Infer represents _
	Infer struct {
		Position shared.Position
	}

	//Macro represents macro invocation in type position
	Macro struct {
		Position shared.Position
		Name     string
		Tokens   string
	}

	//Never represents !
	Never struct {
		Position shared.Position
	}

	//Paren represents (T)
	Paren struct {
		Position shared.Position
		Elem     Type
	}

	//Group represents invisible delimited type produced by macro expansion
	Group struct {
		Position shared.Position
		Elem     Type
	}

	//Verbatim represents tokens the parser could not interpret
	Verbatim struct {
		Position shared.Position
		Text     string
	}
)

// NewPath creates single segment path
func NewPath(name string, args ...Type) *Path {
	segment := &Segment{Name: name}
	for _, arg := range args {
		segment.Args = append(segment.Args, &GenericArg{Type: arg})
	}
	return &Path{Segments: []*Segment{segment}}
}

// Last returns last path segment
func (p *Path) Last() *Segment {
	if len(p.Segments) == 0 {
		return nil
	}
	return p.Segments[len(p.Segments)-1]
}

// Ident returns identifier of single segment path without arguments
func (p *Path) Ident() (string, bool) {
	if len(p.Segments) != 1 || len(p.Segments[0].Args) > 0 {
		return "", false
	}
	return p.Segments[0].Name, true
}

// TypeArgs returns type arguments of the segment, lifetimes and const arguments are skipped
func (s *Segment) TypeArgs() []Type {
	var result []Type
	for _, arg := range s.Args {
		if arg.Type != nil {
			result = append(result, arg.Type)
		}
	}
	return result
}

func (p *Path) Pos() shared.Position        { return p.Position }
func (p *Pointer) Pos() shared.Position     { return p.Position }
func (r *Reference) Pos() shared.Position   { return r.Position }
func (a *Array) Pos() shared.Position       { return a.Position }
func (s *Slice) Pos() shared.Position       { return s.Position }
func (t *Tuple) Pos() shared.Position       { return t.Position }
func (b *BareFn) Pos() shared.Position      { return b.Position }
func (t *TraitObject) Pos() shared.Position { return t.Position }
func (i *ImplTrait) Pos() shared.Position   { return i.Position }
func (i *Infer) Pos() shared.Position       { return i.Position }
func (m *Macro) Pos() shared.Position       { return m.Position }
func (n *Never) Pos() shared.Position       { return n.Position }
func (p *Paren) Pos() shared.Position       { return p.Position }
func (g *Group) Pos() shared.Position       { return g.Position }
func (v *Verbatim) Pos() shared.Position    { return v.Position }

func (*Path) Kind() string        { return "path" }
func (*Pointer) Kind() string     { return "pointer" }
func (*Reference) Kind() string   { return "reference" }
func (*Array) Kind() string       { return "array" }
func (*Slice) Kind() string       { return "slice" }
func (*Tuple) Kind() string       { return "tuple" }
func (*BareFn) Kind() string      { return "bare function" }
func (*TraitObject) Kind() string { return "trait object" }
func (*ImplTrait) Kind() string   { return "impl trait" }
func (*Infer) Kind() string       { return "infer" }
func (*Macro) Kind() string       { return "macro" }
func (*Never) Kind() string       { return "never" }
func (*Paren) Kind() string       { return "parenthesis" }
func (*Group) Kind() string       { return "group" }
func (*Verbatim) Kind() string    { return "verbatim" }

func (*Path) typ()        {}
func (*Pointer) typ()     {}
func (*Reference) typ()   {}
func (*Array) typ()       {}
func (*Slice) typ()       {}
func (*Tuple) typ()       {}
func (*BareFn) typ()      {}
func (*TraitObject) typ() {}
func (*ImplTrait) typ()   {}
func (*Infer) typ()       {}
func (*Macro) typ()       {}
func (*Never) typ()       {}
func (*Paren) typ()       {}
func (*Group) typ()       {}
func (*Verbatim) typ()    {}

func (p *Path) String() string {
	segments := make([]string, 0, len(p.Segments))
	for _, segment := range p.Segments {
		segments = append(segments, segment.String())
	}
	return strings.Join(segments, "::")
}

func (s *Segment) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	args := make([]string, 0, len(s.Args))
	for _, arg := range s.Args {
		switch {
		case arg.Type != nil:
			args = append(args, arg.Type.String())
		case arg.Lifetime != "":
			args = append(args, "'"+arg.Lifetime)
		default:
			args = append(args, arg.Const)
		}
	}
	return s.Name + "<" + strings.Join(args, ", ") + ">"
}

func (p *Pointer) String() string {
	if p.Mutable {
		return "*mut " + p.Elem.String()
	}
	return "*const " + p.Elem.String()
}

func (r *Reference) String() string {
	sb := strings.Builder{}
	sb.WriteString("&")
	if r.Lifetime != "" {
		sb.WriteString("'" + r.Lifetime + " ")
	}
	if r.Mutable {
		sb.WriteString("mut ")
	}
	sb.WriteString(r.Elem.String())
	return sb.String()
}

func (a *Array) String() string { return "[" + a.Elem.String() + "; " + a.Len + "]" }
func (s *Slice) String() string { return "[" + s.Elem.String() + "]" }

func (t *Tuple) String() string {
	elems := make([]string, 0, len(t.Elems))
	for _, elem := range t.Elems {
		elems = append(elems, elem.String())
	}
	if len(elems) == 1 {
		return "(" + elems[0] + ",)"
	}
	return "(" + strings.Join(elems, ", ") + ")"
}

func (b *BareFn) String() string {
	params := make([]string, 0, len(b.Params))
	for _, param := range b.Params {
		params = append(params, param.String())
	}
	ret := "fn(" + strings.Join(params, ", ") + ")"
	if b.ABI != "" {
		ret = `extern "` + b.ABI + `" ` + ret
	}
	if b.Result != nil {
		ret += " -> " + b.Result.String()
	}
	return ret
}

func (t *TraitObject) String() string { return "dyn " + t.Bounds }
func (i *ImplTrait) String() string   { return "impl " + i.Bounds }
func (*Infer) String() string         { return "_" }
func (m *Macro) String() string       { return m.Name + "!" + m.Tokens }
func (*Never) String() string         { return "!" }
func (p *Paren) String() string       { return "(" + p.Elem.String() + ")" }
func (g *Group) String() string       { return g.Elem.String() }
func (v *Verbatim) String() string    { return v.Text }
