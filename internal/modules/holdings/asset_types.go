package holdings

import "strings"

// validAssetTypes is the closed set of normalized asset types.
var validAssetTypes = map[string]bool{
	"stock":           true,
	"crypto":          true,
	"roth_ira":        true,
	"cash":            true,
	"hysa":            true,
	"bank":            true,
	"home_equity":     true,
	"other":           true,
	"etf":             true,
	"bond":            true,
	"401k":            true,
	"529":             true,
	"child_roth":      true,
	"hsa":             true,
	"traditional_ira": true,
	"sep_ira":         true,
}

// assetTypeAlias is one common variation of a normalized asset type.
// Aliases live in a slice, not a map, because the partial-match fallback
// scans them in order and the first hit wins; map iteration order would make
// multi-match inputs normalize nondeterministically.
type assetTypeAlias struct {
	alias string
	valid string
}

var assetTypeAliases = []assetTypeAlias{
	{"stocks", "stock"},
	{"equity", "stock"},
	{"equities", "stock"},
	{"cryptocurrency", "crypto"},
	{"cryptocurrencies", "crypto"},
	{"roth", "roth_ira"},
	{"roth ira", "roth_ira"},
	{"ira", "roth_ira"}, // default to roth_ira if just "ira"
	{"savings", "hysa"},
	{"high yield savings", "hysa"},
	{"checking", "bank"},
	{"checking account", "bank"},
	{"savings account", "bank"},
	{"bank account", "bank"},
	{"real estate", "home_equity"},
	{"property", "home_equity"},
	{"401(k)", "401k"},
	{"401(k) plan", "401k"},
	{"529 plan", "529"},
	{"college savings", "529"},
	{"child's roth", "child_roth"},
	{"child's roth ira", "child_roth"},
	{"child roth", "child_roth"},
	{"health savings account", "hsa"},
	{"traditional", "traditional_ira"},
	{"traditional ira", "traditional_ira"},
	{"sep", "sep_ira"},
	{"sep ira", "sep_ira"},
	{"simplified employee pension", "sep_ira"},
}

// assetTypeDisplayNames maps normalized asset types to the labels shown in
// the chart legend and breakdown table.
var assetTypeDisplayNames = map[string]string{
	"stock":           "Stocks",
	"etf":             "ETFs",
	"crypto":          "Crypto",
	"bond":            "Bonds",
	"cash":            "Cash",
	"hysa":            "HYSA",
	"bank":            "Bank",
	"home_equity":     "Home Equity",
	"roth_ira":        "Roth IRA",
	"traditional_ira": "Traditional IRA",
	"sep_ira":         "SEP IRA",
	"401k":            "401k",
	"529":             "529",
	"child_roth":      "Child Roth",
	"hsa":             "HSA",
	"other":           "Other Assets",
}

// NormalizeAssetType maps a free-form asset type to a valid normalized value,
// defaulting to "other" when nothing matches.
func NormalizeAssetType(assetType string) string {
	if assetType == "" {
		return "other"
	}

	normalized := strings.ToLower(strings.TrimSpace(assetType))

	if validAssetTypes[normalized] {
		return normalized
	}

	for _, a := range assetTypeAliases {
		if a.alias == normalized {
			return a.valid
		}
	}

	// Substring matching for common patterns ("Vanguard ETF" -> etf).
	// First hit in alias order wins.
	for _, a := range assetTypeAliases {
		if strings.Contains(normalized, a.alias) || strings.Contains(a.alias, normalized) {
			return a.valid
		}
	}

	switch {
	case strings.Contains(normalized, "etf"):
		return "etf"
	case strings.Contains(normalized, "bond"):
		return "bond"
	case strings.Contains(normalized, "401"):
		return "401k"
	case strings.Contains(normalized, "529"):
		return "529"
	case strings.Contains(normalized, "hsa"):
		return "hsa"
	case strings.Contains(normalized, "sep"):
		return "sep_ira"
	case strings.Contains(normalized, "traditional") && strings.Contains(normalized, "ira"):
		return "traditional_ira"
	case strings.Contains(normalized, "child") &&
		(strings.Contains(normalized, "roth") || strings.Contains(normalized, "ira")):
		return "child_roth"
	case strings.Contains(normalized, "roth"),
		strings.Contains(normalized, "ira") && !strings.Contains(normalized, "traditional"):
		return "roth_ira"
	case strings.Contains(normalized, "crypto"),
		strings.Contains(normalized, "bitcoin"),
		strings.Contains(normalized, "ethereum"):
		return "crypto"
	case strings.Contains(normalized, "cash"):
		return "cash"
	case strings.Contains(normalized, "savings") && strings.Contains(normalized, "high"):
		return "hysa"
	case strings.Contains(normalized, "bank"),
		strings.Contains(normalized, "checking"),
		strings.Contains(normalized, "savings account"):
		return "bank"
	case strings.Contains(normalized, "home"),
		strings.Contains(normalized, "property"),
		strings.Contains(normalized, "real estate"):
		return "home_equity"
	}

	return "other"
}

// AssetTypeDisplayName returns the legend label for a normalized asset type.
func AssetTypeDisplayName(assetType string) string {
	if name, ok := assetTypeDisplayNames[assetType]; ok {
		return name
	}
	return assetType
}
