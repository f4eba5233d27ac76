package categorize

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/nerrad567/devparam/internal/parameter"
)

// Logger is the logging surface the categorizer needs.
// *slog.Logger and logging.Logger satisfy it.
type Logger interface {
	Warn(msg string, args ...any)
}

// Predicate is one independent test of a rule.
type Predicate struct {
	// Name identifies the predicate in logs and match results.
	Name string

	// Match reports whether the record satisfies the predicate. An error
	// counts as a non-match.
	Match func(rec parameter.Record) (bool, error)
}

// Rule binds an ordered list of predicates to one category.
type Rule struct {
	Category   Category
	Predicates []Predicate
}

// Keyword sets per category, matched case-insensitively.
const (
	timingKeywords     = `rpi|timeout|watchdog|timer|interval|delay|period`
	assemblyKeywords   = `assembly|packet.*size|data.*length|(input|output|config).*size`
	connPointKeywords  = `connection.*point|_cp\d?|listen.*only|input.*only|exclusive.*owner`
	ioConfigKeywords   = `pin|port|layout|channel|mode|slot|module`
	variableKeywords   = `variable|dynamic`
	diagnosticKeywords = `diag|status|error|fault|alarm`
	deviceCfgKeywords  = `config|setting|enable|disable|feature|option`
)

// DefaultRules returns the built-in rule list in evaluation order. Each
// rule tests the parameter name first, then the help and description text.
// Evaluation order is not display order: DeviceConfig is tried last
// although its Priority places it before VariableData and Diagnostic.
func DefaultRules() []Rule {
	return []Rule{
		keywordRule(NetworkTiming, timingKeywords),
		keywordRule(IoAssembly, assemblyKeywords),
		keywordRule(ConnectionPoints, connPointKeywords),
		keywordRule(IoConfiguration, ioConfigKeywords),
		keywordRule(VariableData, variableKeywords),
		keywordRule(Diagnostic, diagnosticKeywords),
		keywordRule(DeviceConfig, deviceCfgKeywords),
	}
}

func keywordRule(cat Category, keywords string) Rule {
	re := regexp.MustCompile(`(?i)` + keywords)
	return Rule{
		Category: cat,
		Predicates: []Predicate{
			RegexpPredicate(string(cat)+".name", re, func(r parameter.Record) string { return r.Name }),
			RegexpPredicate(string(cat)+".text", re, helpText),
		},
	}
}

// RegexpPredicate builds a predicate testing re against the field selected
// by field.
func RegexpPredicate(name string, re *regexp.Regexp, field func(parameter.Record) string) Predicate {
	return Predicate{
		Name: name,
		Match: func(rec parameter.Record) (bool, error) {
			text := field(rec)
			if text == "" {
				return false, nil
			}
			return re.MatchString(text), nil
		},
	}
}

// helpText joins the help strings and the description.
func helpText(rec parameter.Record) string {
	parts := make([]string, 0, 4)
	for _, s := range append(rec.HelpStrings(), rec.Description) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// Match is the outcome of classifying one record.
type Match struct {
	Category Category `json:"category"`

	// Predicate is the name of the predicate that matched; empty for Other.
	Predicate string `json:"predicate,omitempty"`
}

// Categorizer classifies records with an immutable rule list. It is safe
// for concurrent use.
type Categorizer struct {
	rules  []Rule
	logger Logger
}

// NewCategorizer returns a categorizer using DefaultRules. A nil logger
// discards predicate failures.
func NewCategorizer(logger Logger) *Categorizer {
	return NewCategorizerWithRules(DefaultRules(), logger)
}

// NewCategorizerWithRules returns a categorizer evaluating rules in the
// given order.
func NewCategorizerWithRules(rules []Rule, logger Logger) *Categorizer {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Categorizer{rules: cp, logger: logger}
}

// Classify returns the category of rec. It never fails.
func (c *Categorizer) Classify(rec parameter.Record) Category {
	return c.Explain(rec).Category
}

// Explain classifies rec and reports which predicate decided it.
func (c *Categorizer) Explain(rec parameter.Record) Match {
	for _, rule := range c.rules {
		for _, pred := range rule.Predicates {
			if c.evaluate(pred, rec) {
				return Match{Category: rule.Category, Predicate: pred.Name}
			}
		}
	}
	return Match{Category: Other}
}

// evaluate runs one predicate, converting errors and panics to false.
func (c *Categorizer) evaluate(pred Predicate, rec parameter.Record) (matched bool) {
	if pred.Match == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			c.warn(pred, rec, fmt.Errorf("%w: %v", ErrPredicatePanic, r))
			matched = false
		}
	}()

	ok, err := pred.Match(rec)
	if err != nil {
		c.warn(pred, rec, err)
		return false
	}
	return ok
}

func (c *Categorizer) warn(pred Predicate, rec parameter.Record, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn("category predicate failed",
		"predicate", pred.Name,
		"parameter", rec.Name,
		"error", err,
	)
}

// slogDefault forwards to whatever slog.Default is at call time.
type slogDefault struct{}

func (slogDefault) Warn(msg string, args ...any) { slog.Warn(msg, args...) }

var defaultCategorizer = NewCategorizer(slogDefault{})

// Classify classifies rec with the default rules, logging predicate
// failures through slog.Default.
func Classify(rec parameter.Record) Category {
	return defaultCategorizer.Classify(rec)
}
