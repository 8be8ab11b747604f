package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sunyue-dev/time-exchange/internal/models"
)

// feedbackScreen shows the witnessed moment and the four reactions. Any
// reaction submits; which one was chosen does not affect the counter.
func (a *App) feedbackScreen(ctx context.Context) bool {
	options := models.DefaultFeedbackOptions()

	fmt.Fprintln(a.out, "")
	if m := a.router.Selected(); m != nil {
		fmt.Fprintf(a.out, "你正在见证另一位时间使者的 10 分钟\n%s · %s\n%s\n\n", m.Author, m.Location, m.Description)
	}
	for i, opt := range options {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, opt.Label)
	}

	for {
		cmd, err := GetSimpleText(a.reader, "选择任一反馈，回到你的现实世界 (1-4 | close)", a.out)
		if err != nil {
			return true
		}

		switch cmd {
		case "close", "c":
			a.router.CloseFeedback(ctx)
			return false
		default:
			if n, convErr := strconv.Atoi(cmd); convErr == nil && n >= 1 && n <= len(options) {
				a.router.SubmitFeedback(ctx)
				return false
			}
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
