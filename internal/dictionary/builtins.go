package dictionary

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed builtins.yaml
var builtinsYAML []byte

// Config names one of the four starter vocabularies.
type Config string

const (
	Minimal      Config = "minimal"
	Standard     Config = "standard"
	MathEnhanced Config = "math_enhanced"
	Extended     Config = "extended"
)

// builtinWord is one row of builtins.yaml.
type builtinWord struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Consumed int    `yaml:"consumed"`
	Produced int    `yaml:"produced"`
	Template string `yaml:"template"`
}

type vocabulary struct {
	Includes []string      `yaml:"includes"`
	Words    []builtinWord `yaml:"words"`
}

type builtinsFile struct {
	Vocabularies map[string]vocabulary `yaml:"vocabularies"`
}

var (
	loadOnce   sync.Once
	loadedFile builtinsFile
	loadErr    error
)

func loadBuiltins() (builtinsFile, error) {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(builtinsYAML, &loadedFile)
	})
	return loadedFile, loadErr
}

// resolveVocabulary flattens a configuration's include chain into the
// full list of builtin words it seeds, in deterministic (file) order,
// later tiers' words taking priority over earlier ones on name clashes
// (there are none in practice, since each tier only adds new names).
func resolveVocabulary(cfg Config) []builtinWord {
	file, err := loadBuiltins()
	if err != nil {
		// The embedded YAML is part of the binary; a parse failure here
		// is a build-time defect, not a runtime input error, so we panic
		// the way a bad embed would panic on an invalid template.
		panic(fmt.Sprintf("dictionary: invalid embedded builtins.yaml: %v", err))
	}

	seen := map[string]bool{}
	var out []builtinWord
	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		vocab, ok := file.Vocabularies[name]
		if !ok {
			return
		}
		for _, inc := range vocab.Includes {
			visit(inc)
		}
		out = append(out, vocab.Words...)
	}
	visit(string(cfg))
	return out
}
