package services

import (
	"regexp"
	"strings"

	"anbupayan_go_backend/internal/models"
)

var (
	headerRestatementPattern = regexp.MustCompile(`(?i)^category\s*\|\s*details.*\|\s*estimated cost`)
	verdictPattern           = regexp.MustCompile(`(?i)Fits within budget|Exceeds budget`)
	totalPrefixPattern       = regexp.MustCompile(`(?i)^total`)
	costDigitsPattern        = regexp.MustCompile(`\d[\d,]*`)
)

// ParseBudgetText converts a cleaned budget response into a BudgetTable. The
// header row is always row 0. Lines that match no pattern degrade into the
// notes string, so the parser always returns a usable result.
//
// Total detection is a prefix match: any line whose first token is "total"
// (case-insensitively) is flagged as the grand-total row, so a category like
// "Total souvenirs" is misclassified. Known sharp edge, kept deliberately.
func ParseBudgetText(cleaned string) models.BudgetTable {
	rows := []models.BudgetRow{models.BudgetHeader}
	notes := ""
	totalRow := -1

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if headerRestatementPattern.MatchString(line) {
			continue
		}

		if verdictPattern.MatchString(line) {
			notes = line
			continue
		}

		if totalPrefixPattern.MatchString(line) {
			rows = append(rows, splitBudgetLine(line))
			totalRow = len(rows) - 1
			continue
		}

		// Fallback for total lines whose category does not start with
		// "total": pull the first run of digits/commas as the cost.
		if strings.Contains(line, "Total Estimated Cost") {
			rows = append(rows, models.BudgetRow{
				Category: "Total Estimated Cost",
				Cost:     costDigitsPattern.FindString(line),
			})
			totalRow = len(rows) - 1
			continue
		}

		if strings.Contains(line, "|") {
			rows = append(rows, splitBudgetLine(line))
			continue
		}

		notes += " " + line
	}

	return models.BudgetTable{
		Rows:     rows,
		Notes:    strings.TrimSpace(notes),
		TotalRow: totalRow,
	}
}

// splitBudgetLine splits on "|" and pads or truncates to exactly three
// fields.
func splitBudgetLine(line string) models.BudgetRow {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return models.BudgetRow{
		Category: parts[0],
		Details:  parts[1],
		Cost:     parts[2],
	}
}
