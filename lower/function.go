package lower

import (
	"fmt"
	"strings"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/doc"
	"github.com/viant/csbind/naming"
	"github.com/viant/csbind/resolver"
	"github.com/viant/csbind/shared"
)

const kindFunction = "function"

type parameter struct {
	name string
	typ  *resolver.TypeName
}

func (p *pass) lowerFunction(fn *decl.Function) (*outcome, error) {
	if !fn.IsExternC() {
		return skipped(kindFunction, fn.Name, `missing extern "C"`), nil
	}
	result := resolver.NewTypeName("void", "void")
	if fn.Result != nil {
		var err error
		if result, err = p.resolver.Resolve(fn.Result); err != nil {
			return nil, err
		}
	}
	params := make([]*parameter, 0, len(fn.Params))
	for _, param := range fn.Params {
		if param.Receiver {
			return nil, shared.NewUnsupportedError("receiver", param.Position, "receiver parameters aren't supported")
		}
		if param.Name == "" {
			return nil, shared.NewUnsupportedError("pattern", param.Position, "parameters that are not identifiers aren't supported: %v", param.Pattern)
		}
		paramType, err := p.resolver.Resolve(param.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, &parameter{name: naming.Parameter(param.Name), typ: paramType})
	}

	builder := p.builder
	doc.WriteSummary(builder, doc.Extract(fn.Attrs))
	for _, param := range params {
		doc.WriteParam(builder, param.name, param.typ.Native)
	}
	doc.WriteReturns(builder, result.Native)
	builder.WriteLine(fmt.Sprintf(`[DllImport("%v", CallingConvention = CallingConvention.Cdecl, EntryPoint="%v")]`, p.config.DllName, fn.Name))
	signature := make([]string, 0, len(params))
	for _, param := range params {
		signature = append(signature, param.typ.String()+" "+param.name)
	}
	builder.WriteLine(fmt.Sprintf("internal static extern %v %v(%v);", result.String(), naming.Member(fn.Name), strings.Join(signature, ", ")))
	builder.NewLine()
	return &outcome{kind: kindFunction, name: fn.Name}, nil
}
