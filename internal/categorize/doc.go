// Package categorize assigns device parameters to functional categories.
//
// Classification runs an ordered list of rules. Each rule is bound to one
// Category and holds independent predicates over the record's name and its
// help/description text. The first rule with a matching predicate wins; a
// record that matches nothing is classified as Other.
//
// Predicates may fail. A failing predicate (returned error or panic) is
// logged and treated as a non-match, so Classify never fails.
//
// Usage:
//
//	c := categorize.NewCategorizer(logger)
//	cat := c.Classify(rec)
//	fmt.Println(cat.Info().DisplayName)
package categorize
