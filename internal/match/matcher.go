package match

import (
	"sort"
	"strings"
)

// Kind identifies which strategy produced a match.
type Kind string

const (
	KindExact     Kind = "exact"
	KindCode      Kind = "code"
	KindReference Kind = "reference"
	KindFuzzy     Kind = "fuzzy"
)

const (
	// DefaultThreshold is the minimum score a candidate must reach to be
	// reported at all.
	DefaultThreshold = 0.5
	// BestMatchThreshold is the minimum score for an unattended
	// (no-review) match.
	BestMatchThreshold = 0.7

	maxResults = 5

	codeScore            = 0.95
	referenceScore       = 0.85
	codeSimilarityWeight = 0.7
)

// CandidateProduct is a read-only view of a catalog entry. ID is opaque to
// the matcher and carried through for callers; optional fields are empty
// strings when absent.
type CandidateProduct struct {
	ID                     string
	Name                   string
	Code                   string
	InternalSKU            string
	ManufacturerPartNumber string
}

// Result is one scored candidate.
type Result struct {
	Product CandidateProduct
	Score   float64
	Kind    Kind
}

// FindMatches ranks candidates against a free-text item description and an
// optional reference code. Candidates scoring below DefaultThreshold are
// dropped; the result is sorted by descending score and capped at five
// entries. An empty name or candidate list yields an empty result.
func FindMatches(itemName, itemReference string, candidates []CandidateProduct) []Result {
	return FindAllMatches(itemName, itemReference, candidates, DefaultThreshold)
}

// FindAllMatches is FindMatches with a caller-supplied minimum score. The
// internal DefaultThreshold floor still applies before the caller's
// threshold, so a threshold below 0.5 does not widen the result.
func FindAllMatches(itemName, itemReference string, candidates []CandidateProduct, threshold float64) []Result {
	name := Normalize(itemName)
	if name == "" || len(candidates) == 0 {
		return nil
	}
	ref := Normalize(itemReference)

	out := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		score, kind := scoreCandidate(name, ref, c)
		if score < DefaultThreshold || score < threshold {
			continue
		}
		out = append(out, Result{Product: c, Score: score, Kind: kind})
	}

	// Stable sort keeps input order for equal scores.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// FindBestMatch returns the top-ranked candidate only when it is confident
// enough to act on without review. A nil result means "no confident match",
// which callers must treat differently from an empty candidate list.
func FindBestMatch(itemName, itemReference string, candidates []CandidateProduct) *Result {
	matches := FindMatches(itemName, itemReference, candidates)
	if len(matches) == 0 || matches[0].Score < BestMatchThreshold {
		return nil
	}
	best := matches[0]
	return &best
}

// scoreCandidate evaluates the strategy tiers in priority order; the first
// tier whose condition holds wins and later tiers are not evaluated, so an
// exact name match can never be demoted by a weaker tier.
func scoreCandidate(name, ref string, c CandidateProduct) (float64, Kind) {
	candName := Normalize(c.Name)
	candCode := Normalize(c.Code)
	candSKU := Normalize(c.InternalSKU)
	candMPN := Normalize(c.ManufacturerPartNumber)

	// 1. Exact normalized name.
	if candName == name {
		return 1, KindExact
	}

	if ref != "" {
		// 2. Reference equals one of the candidate's codes.
		if (candCode != "" && ref == candCode) ||
			(candSKU != "" && ref == candSKU) ||
			(candMPN != "" && ref == candMPN) {
			return codeScore, KindCode
		}
		// 3. Reference embedded in the name, or the candidate code embedded
		// in the reference.
		if strings.Contains(candName, ref) || (candCode != "" && strings.Contains(ref, candCode)) {
			return referenceScore, KindReference
		}
	}

	// 4. Fuzzy fallback: name similarity, or a down-weighted code
	// similarity when a reference was supplied.
	score := Similarity(name, candName)
	if ref != "" {
		codeSim := Similarity(ref, candCode)
		if s := Similarity(ref, candSKU); s > codeSim {
			codeSim = s
		}
		if weighted := codeSim * codeSimilarityWeight; weighted > score {
			score = weighted
		}
	}
	return score, KindFuzzy
}
