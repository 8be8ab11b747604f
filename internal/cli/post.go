package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sunyue-dev/time-exchange/internal/capture"
	"github.com/sunyue-dev/time-exchange/internal/models"
)

// sleep is a test seam for the archive close delay.
var sleep = time.Sleep

// postScreen records a 10-minute moment: optional camera capture, free-form
// text, visibility and comic-consent toggles, then the archive step with its
// AI reflection. The capture stream is released on every exit path.
func (a *App) postScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "封存这段 10 分钟")

	var stream *capture.Stream
	defer func() {
		if stream != nil {
			if err := stream.Stop(); err != nil {
				a.log.Warn(ctx, "failed to release capture device", "error", err)
			}
		}
	}()

	if Confirm(a.reader, "用相机记录这 10 分钟？", a.out) {
		s, err := a.camera.Open(ctx)
		if err != nil {
			a.log.Warn(ctx, "camera unavailable", "error", err)
			fmt.Fprintln(a.out, "请允许相机权限以记录这10分钟")
		} else {
			stream = s
			fmt.Fprintln(a.out, "相机已开启。")
		}
	}

	content, err := GetMultiline(a.reader, "描述正在发生的 10 分钟，不需要总结，不需要好看。", a.out)
	if err != nil {
		a.router.ClosePost(ctx)
		return true
	}
	if content == "" && stream == nil {
		a.router.ClosePost(ctx)
		return false
	}

	post := models.Post{
		Content:    content,
		Public:     !Confirm(a.reader, "仅自己可见？", a.out),
		AllowComic: Confirm(a.reader, "允许官方在未来将此瞬间改编为漫剧？", a.out),
	}

	// The capture ends when archiving starts, before the reflection call.
	if stream != nil {
		if err := stream.Stop(); err != nil {
			a.log.Warn(ctx, "failed to release capture device", "error", err)
		}
		stream = nil
	}

	fmt.Fprintln(a.out, "AI 正在见证你的这段时间...")
	post.Reflection = a.gen.GenerateReflection(ctx, post.Content)
	post.ArchivedAt = time.Now()

	fmt.Fprintf(a.out, "\n“%s”\n已成功封存入交换池\n", post.Reflection)
	a.log.Info(ctx, "moment archived", "public", post.Public, "allow_comic", post.AllowComic)

	sleep(a.cfg.ArchiveCloseDelay)
	a.router.ClosePost(ctx)
	return false
}
