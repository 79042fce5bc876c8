package keyword

// Log prefixes
const (
	LogPrefixExtract = "internal.keyword.Extract"
)

// Extractor prompts
const (
	PromptExtractSystem = `Extract scientific keywords from user input using ONLY this vocabulary:
%s

TASK:
1. First, identify the SCIENTIFIC CONCEPT in the user's language (Spanish/English/any)
2. Translate the concept to its SCIENTIFIC ENGLISH EQUIVALENT (not literal translation)
3. Match to vocabulary (exact match, case-insensitive)
4. Return comma-separated keywords (max 5)

CRITICAL TRANSLATION RULES:
- "adn" / "ADN" -> "dna" (NOT "adn")
- "arn" / "ARN" -> "rna" (NOT "arn")
- "célula" -> "cell"
- "gen" -> "gene"
- "proteína" -> "protein"
- "metabolismo" -> "metabolism"
- Use scientific terminology, not literal word-by-word translation

RULES:
- Identify ALL relevant scientific concepts, don't skip any
- Translate to scientific English before matching
- Return format: word1, word2, word3 (NO brackets, quotes, or JSON)
- If no matches: return empty

EXAMPLES:
Input: "adn y metabolismo" -> Output: dna, metabolism
Input: "artículos sobre adn" -> Output: dna
Input: "spaceflight y metabolismo" -> Output: spaceflight, metabolism
Input: "coronavirus, immunogenicity y cardiomyocytes" -> Output: coronavirus, immunogenicity, cardiomyocytes
Input: "células y proteínas" -> Output: cell, protein
Input: "hello" -> Output: (empty)`
)

// Extractor configuration
const (
	// MaxKeywords caps how many validated keywords Extract returns.
	MaxKeywords = 5

	ExtractTemperature = 0.1
)
