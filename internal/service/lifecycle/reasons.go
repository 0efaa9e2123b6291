package lifecycle

import (
	"fmt"
	"strconv"
	"strings"
)

var CancelReasons = []string{
	"Restaurant closed or unavailable",
	"Unable to contact restaurant",
	"Order already picked up by another partner",
	"Wrong/incomplete address",
	"Traffic / too far / cannot deliver on time",
	"Personal reason / emergency",
	"Other",
}

// ResolveCancelReason номер из списка превращается в текст причины,
// все остальное считается свободным текстом.
func ResolveCancelReason(input string) string {
	input = strings.TrimSpace(input)
	if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(CancelReasons) {
		return CancelReasons[num-1]
	}
	return input
}

func cancelReasonMessage() string {
	var b strings.Builder
	b.WriteString("Please select cancellation reason:\n\n")
	for i, r := range CancelReasons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	fmt.Fprintf(&b, "\nEnter number (1-%d) or type your reason:", len(CancelReasons))
	return b.String()
}
