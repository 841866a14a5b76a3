package blocks

import "strings"

// Category is the presentational group of a block template.
type Category string

const (
	CategoryControl  Category = "control"
	CategoryMovement Category = "movement"
	CategoryServo    Category = "servo"
	CategoryBasic    Category = "basic"
)

var controlKeywords = []string{"Function", "Run Forever", "Repeat", "If"}

// Classify derives a category from template content.
// Keywords are checked in priority order and the first match wins:
// "Wait" -> basic, control keywords -> control, "Motor" -> movement,
// anything else -> servo.
func Classify(content string) Category {
	if strings.Contains(content, "Wait") {
		return CategoryBasic
	}
	for _, kw := range controlKeywords {
		if strings.Contains(content, kw) {
			return CategoryControl
		}
	}
	if strings.Contains(content, "Motor") {
		return CategoryMovement
	}
	return CategoryServo
}
