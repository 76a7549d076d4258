/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: text.go
Description: Fixed-width textual rendering of classification results for
Akaylee ArchRec. One row per reference architecture, in corpus insertion
order, with the bigram and trigram divergence scores.
*/

package reporting

import (
	"fmt"
	"strings"

	"github.com/kleascm/akaylee-archrec/pkg/interfaces"
)

// FormatResult renders one result row in fixed-width form.
func FormatResult(r interfaces.Result) string {
	return fmt.Sprintf("%10s %12.6f %12.6f", r.Arch, r.BigramDivergence, r.TrigramDivergence)
}

// FormatResults renders all result rows of a query file, preserving
// their order. No ranking is applied here.
func FormatResults(results []interfaces.Result) string {
	var output strings.Builder
	for _, r := range results {
		output.WriteString(FormatResult(r))
		output.WriteString("\n")
	}
	return output.String()
}
