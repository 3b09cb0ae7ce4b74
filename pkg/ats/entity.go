package ats

// Score — отчёт ATS-оценки резюме относительно описания вакансии.
// Имена JSON-полей (с пробелами) — формат границы, ожидаемый клиентом.
type Score struct {
	JDMatch         string   `json:"JD Match"`
	MissingKeywords []string `json:"MissingKeywords"`
	ProfileSummary  string   `json:"Profile Summary"`
}

// Result дополняет отчёт служебной информацией об обработанном файле.
type Result struct {
	Score     Score  `json:"score"`
	Filename  string `json:"filename"`
	CharsUsed int    `json:"charsUsed"`
	Excerpted bool   `json:"excerpted"` // true if input was truncated to fit limits
}
