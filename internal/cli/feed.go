package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sunyue-dev/time-exchange/internal/feed"
	"github.com/sunyue-dev/time-exchange/internal/models"
	"github.com/sunyue-dev/time-exchange/internal/router"
)

// feedScreen shows the real-time moments and the comic tab. The comic service
// is constructed per visit, so its cached entry lives exactly as long as the
// screen instance.
func (a *App) feedScreen(ctx context.Context) bool {
	comic := feed.NewComicService(a.gen)
	moments := a.source.Moments()

	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "这里不是让你刷的，是让你看看别人如何用 10 分钟的。")
	a.printMoments()

	for {
		cmd, err := GetSimpleText(a.reader, "feed (next | watch <n> | comic | refresh | post | profile | list | exit)", a.out)
		if err != nil {
			return true
		}

		switch cmd {
		case "l", "list":
			a.printMoments()

		case "next":
			a.router.WatchMoment(ctx, a.source.Pick())

		case "comic":
			a.printComic(ctx, comic.Load)

		case "refresh":
			a.printComic(ctx, comic.Refresh)

		case "post":
			a.router.OpenPost(ctx)

		case "profile":
			a.router.OpenProfile(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return true

		case "":
			// ignore empty input

		default:
			if n, convErr := strconv.Atoi(trimWatch(cmd)); convErr == nil && n >= 1 && n <= len(moments) {
				a.router.WatchMoment(ctx, moments[n-1])
			} else {
				fmt.Fprintln(a.out, "Unknown command:", cmd)
			}
		}

		if a.router.Current() != router.ScreenFeed {
			return false
		}
	}
}

func (a *App) printMoments() {
	for i, m := range a.source.Moments() {
		fmt.Fprintf(a.out, "%d. %s · %s · %s\n   %s\n", i+1, m.Author, m.Location, m.Timestamp, m.Description)
	}
}

func (a *App) printComic(ctx context.Context, load func(context.Context) (*models.ComicEntry, bool)) {
	fmt.Fprintln(a.out, "AI 正在捕捉这一刻的诗意...")
	entry, ok := load(ctx)
	if !ok {
		fmt.Fprintln(a.out, "加载失败，请重试")
		return
	}
	fmt.Fprintf(a.out, "“%s”\n[插画已生成：%d 字节]\n", entry.Text, len(entry.Image))
}

// trimWatch accepts both "watch 2" and a bare "2".
func trimWatch(cmd string) string {
	const prefix = "watch "
	if len(cmd) > len(prefix) && cmd[:len(prefix)] == prefix {
		return cmd[len(prefix):]
	}
	return cmd
}
