package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sunyue-dev/time-exchange/internal/router"
)

const shareCardFile = "share-card.png"

// profileScreen shows the messenger card with the share and logout actions.
// Logout is gated behind an explicit confirmation and is irreversible once
// confirmed.
func (a *App) profileScreen(ctx context.Context) bool {
	id := a.router.Identity()
	if id == nil {
		// logged out from under the screen; the router guards make this
		// unreachable, but render nothing rather than panic
		a.router.CloseProfile(ctx)
		return false
	}

	fmt.Fprintln(a.out, "")
	fmt.Fprintf(a.out, "时间使者 #%s\n%s\n“%s”\n", id.ID, id.Title, id.Mantra)

	for {
		cmd, err := GetSimpleText(a.reader, "profile (share | copy | logout | close)", a.out)
		if err != nil {
			return true
		}

		switch cmd {
		case "share":
			png, qrErr := a.share.QRCode(ctx, a.cfg.ShareURL)
			if qrErr != nil {
				a.log.Error(ctx, "failed to render share card", "error", qrErr)
				fmt.Fprintln(a.out, "分享名片生成失败")
				break
			}
			if writeErr := os.WriteFile(shareCardFile, png, 0o644); writeErr != nil {
				a.log.Error(ctx, "failed to write share card", "error", writeErr)
				fmt.Fprintln(a.out, "分享名片保存失败")
				break
			}
			fmt.Fprintf(a.out, "分享名片已保存：%s\n", shareCardFile)

		case "copy":
			if copyErr := a.share.CopyLink(a.cfg.ShareURL); copyErr != nil {
				a.log.Warn(ctx, "clipboard write failed", "error", copyErr)
				fmt.Fprintln(a.out, "复制失败")
			} else {
				fmt.Fprintln(a.out, "分享链接已复制")
			}

		case "logout":
			confirmed := Confirm(a.reader, "注销将永久丢失当前的使者身份，确定吗？", a.out)
			if err := a.router.Logout(ctx, confirmed); err != nil {
				a.log.Error(ctx, "logout failed", "error", err)
			}

		case "close", "c":
			a.router.CloseProfile(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return true

		case "":
			// ignore empty input

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if a.router.Current() != router.ScreenProfile {
			return false
		}
	}
}
