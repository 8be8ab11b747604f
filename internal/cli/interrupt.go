package cli

import (
	"context"
	"fmt"
)

// interruptScreen is the periodic soft prompt suggesting the user disengage.
// "我去做点什么" resets the witnessed counter; "稍后再看" leaves it unchanged,
// so the next prompt comes at the next multiple of the interval.
func (a *App) interruptScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "")
	fmt.Fprintf(a.out, "你已经见证了 %d 段他人的真实生活\n", a.router.WitnessedCount())
	fmt.Fprintln(a.out, "此刻，要不要回归自己的世界？")
	fmt.Fprintln(a.out, "1. 我去做点什么")
	fmt.Fprintln(a.out, "2. 稍后再看")

	for {
		cmd, err := GetSimpleText(a.reader, "interrupt (1 | 2)", a.out)
		if err != nil {
			return true
		}

		switch cmd {
		case "1", "action":
			a.router.TakeAction(ctx)
			return false
		case "2", "later":
			a.router.ContinueLater(ctx)
			return false
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
