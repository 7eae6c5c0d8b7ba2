package metadata

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"quill/internal/engine"
	"quill/internal/object"
)

// scenarioEngine builds an engine with one global native function
// f(a: Int) -> Bool and one sub-module "util" holding one script
// function g(x) with two documentation lines
func scenarioEngine() *engine.Engine {
	e := engine.New()
	e.RegisterFn("f", []string{"a: Int"}, "Bool", nil)

	util := object.NewModule()
	util.SetScriptFn(&object.ScriptFnDef{
		Name:     "g",
		Params:   []string{"x"},
		Comments: []string{"/// Does g things.", "/// Carefully."},
	})
	e.RegisterSubModule("util", util)

	return e
}

func TestGenerateScenario(t *testing.T) {
	doc := Generate(scenarioEngine(), nil, false)

	if len(doc.Functions) != 1 {
		t.Fatalf("expected exactly 1 root function, got %d", len(doc.Functions))
	}
	f := doc.Functions[0]
	if f.Name != "f" || f.Type != "native" || f.NumParams != 1 {
		t.Errorf("unexpected root function: %+v", f)
	}
	if f.Namespace != "global" {
		t.Errorf("expected global namespace for engine-registered function, got %q", f.Namespace)
	}

	if len(doc.Modules) != 1 {
		t.Fatalf("expected exactly 1 sub-module, got %v", doc.Modules)
	}
	util, ok := doc.Modules["util"]
	if !ok {
		t.Fatal("expected modules.util")
	}
	if len(util.Functions) != 1 {
		t.Fatalf("expected 1 function in util, got %d", len(util.Functions))
	}
	g := util.Functions[0]
	if g.Type != "script" {
		t.Errorf("expected script function in util, got %q", g.Type)
	}
	if len(g.DocComments) != 2 {
		t.Errorf("expected 2 doc comment lines, got %v", g.DocComments)
	}
}

func TestGeneratePackages(t *testing.T) {
	e := engine.New()

	pkg1 := object.NewModule()
	pkg1.SetNativeFn("first", nil, "()", nil)
	pkg2 := object.NewModule()
	pkg2.SetNativeFn("second", nil, "()", nil)
	e.RegisterPackage(pkg1)
	e.RegisterPackage(pkg2)

	e.RegisterFn("global_fn", nil, "()", nil)

	t.Run("excluded by default flag", func(t *testing.T) {
		doc := Generate(e, nil, false)
		if len(doc.Functions) != 1 || doc.Functions[0].Name != "global_fn" {
			t.Errorf("expected only the global function, got %v", doc.Functions)
		}
	})

	t.Run("included in registration order before globals", func(t *testing.T) {
		doc := Generate(e, nil, true)
		var names []string
		for _, fn := range doc.Functions {
			names = append(names, fn.Name)
		}
		expected := []string{"first", "second", "global_fn"}
		if diff := cmp.Diff(expected, names); diff != "" {
			t.Errorf("function order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGenerateWithCompiledScript(t *testing.T) {
	e := engine.New()
	e.RegisterFn("host_fn", nil, "()", nil)

	script := object.NewScript()
	script.AddFn(&object.ScriptFnDef{Name: "script_fn", Params: []string{"x"}})

	doc := Generate(e, script, false)
	if len(doc.Functions) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(doc.Functions))
	}
	// Script-table functions come after the global namespace.
	last := doc.Functions[1]
	if last.Name != "script_fn" || last.Type != "script" {
		t.Errorf("unexpected trailing function: %+v", last)
	}
	if last.ReturnType == nil || *last.ReturnType != TypePlaceholder {
		t.Errorf("expected placeholder return type, got %v", last.ReturnType)
	}
}

func TestGenerateJSONShape(t *testing.T) {
	out, err := GenerateJSON(scenarioEngine(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	modules, ok := doc["modules"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected modules object, got %T", doc["modules"])
	}
	util, ok := modules["util"].(map[string]interface{})
	if !ok {
		t.Fatal("expected modules.util object")
	}

	// util has no sub-modules of its own, so the key is omitted, not
	// emitted as an empty object.
	if _, present := util["modules"]; present {
		t.Error("empty modules key should be omitted")
	}

	fns, ok := util["functions"].([]interface{})
	if !ok || len(fns) != 1 {
		t.Fatalf("expected one function in util, got %v", util["functions"])
	}
	g := fns[0].(map[string]interface{})
	if g["type"] != "script" {
		t.Errorf("expected script type, got %v", g["type"])
	}
	docs, ok := g["docComments"].([]interface{})
	if !ok || len(docs) != 2 {
		t.Errorf("expected 2 docComments, got %v", g["docComments"])
	}

	rootFns := doc["functions"].([]interface{})
	f := rootFns[0].(map[string]interface{})
	if f["numParams"] != float64(1) {
		t.Errorf("expected numParams 1, got %v", f["numParams"])
	}
	if f["returnType"] != "Bool" {
		t.Errorf("expected returnType Bool, got %v", f["returnType"])
	}
	if _, present := f["docComments"]; present {
		t.Error("native function must not carry docComments")
	}
}

func TestGenerateJSONEmptyEngine(t *testing.T) {
	out, err := GenerateJSON(engine.New(), nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "{}" {
		t.Errorf("expected empty document, got %q", out)
	}
}

func TestGenerateJSONSortsModuleKeys(t *testing.T) {
	e := engine.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		m := object.NewModule()
		m.SetNativeFn("f", nil, "()", nil)
		e.RegisterSubModule(name, m)
	}

	out, err := GenerateJSON(e, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alpha := strings.Index(out, `"alpha"`)
	mid := strings.Index(out, `"mid"`)
	zeta := strings.Index(out, `"zeta"`)
	if alpha < 0 || mid < 0 || zeta < 0 {
		t.Fatalf("missing module keys in output:\n%s", out)
	}
	if !(alpha < mid && mid < zeta) {
		t.Errorf("module keys not sorted: alpha=%d mid=%d zeta=%d", alpha, mid, zeta)
	}
}

func TestGenerateYAML(t *testing.T) {
	out, err := GenerateYAML(scenarioEngine(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "util:") {
		t.Errorf("expected util module in YAML output:\n%s", out)
	}
	if !strings.Contains(out, "name: f") {
		t.Errorf("expected function f in YAML output:\n%s", out)
	}
}
