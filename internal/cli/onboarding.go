package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sunyue-dev/time-exchange/internal/models"
)

// onboardingScreen collects the user's current mood, generates a messenger
// persona from it, and persists the identity once the user confirms. The
// messenger number is drawn from the device-wide counter at generation time;
// a declined persona discards its number, keeping the sequence monotonic.
func (a *App) onboardingScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "欢迎来到时间交换")
	fmt.Fprintln(a.out, "这里没有账号，只有当下。")

	for {
		mood, err := GetSimpleText(a.reader, "告诉我们，你此刻的感受是什么？（输入 exit 退出）", a.out)
		if err != nil {
			return true
		}
		if mood == "exit" || mood == "quit" {
			return true
		}
		if mood == "" {
			continue
		}

		fmt.Fprintln(a.out, "生成身份中...")
		profile := a.gen.GenerateIdentity(ctx, mood)

		number, err := a.store.NextID(ctx)
		if err != nil {
			a.log.Error(ctx, "failed to assign messenger number", "error", err)
			continue
		}

		id := &models.Identity{
			ID:         number,
			Title:      profile.Title,
			Mantra:     profile.Mantra,
			AvatarSeed: uuid.NewString(),
		}

		fmt.Fprintf(a.out, "\n你是第 %s 位时间使者\n%s\n“%s”\n\n", id.ID, id.Title, id.Mantra)

		if !Confirm(a.reader, "进入时间大厅？", a.out) {
			continue
		}

		if err := a.router.CompleteOnboarding(ctx, id); err != nil {
			a.log.Error(ctx, "failed to complete onboarding", "error", err)
			continue
		}
		return false
	}
}
