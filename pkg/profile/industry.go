package profile

import "strings"

// SplitIndustry разбирает составную строку отрасли "main-sub-words" на
// основную отрасль и человекочитаемую подотрасль ("tech-software-development"
// → "tech", "Software Development"). Чисто презентационное соглашение границы.
func SplitIndustry(industry string) (main, sub string) {
	if industry == "" {
		return "", ""
	}
	parts := strings.Split(industry, "-")
	main = parts[0]
	if len(parts) < 2 {
		return main, ""
	}
	words := parts[1:]
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return main, strings.Join(words, " ")
}

// JoinIndustry — обратная операция для границы ввода: "tech", "Software
// Development" → "tech-software-development".
func JoinIndustry(main, sub string) string {
	main = strings.TrimSpace(main)
	sub = strings.TrimSpace(sub)
	if main == "" {
		return ""
	}
	if sub == "" {
		return main
	}
	slug := strings.ToLower(strings.Join(strings.Fields(sub), "-"))
	return main + "-" + slug
}
