package bot

import (
	"context"
	"testing"

	mock_bot "github.com/DanRulev/vocabdrill/internal/bot/mock"
	"github.com/DanRulev/vocabdrill/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramAPI_SendReminders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		want    int
		wantErr bool
		chats   []int64
	}{
		{
			name: "success",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().UsersToRemind(gomock.Any()).Return([]models.UserStats{
					{UserID: 10, CurrentStreak: 1},
					{UserID: 20, CurrentStreak: 3},
				}, nil)
			},
			want:  2,
			chats: []int64{10, 20},
		},
		{
			name: "send failures are skipped",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().UsersToRemind(gomock.Any()).Return([]models.UserStats{{UserID: 10, CurrentStreak: 2}}, nil)
				mb.Err = assert.AnError
			},
			want: 0,
		},
		{
			name: "error: service",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().UsersToRemind(gomock.Any()).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tg, mockBot := newTelegramMock(t, ctrl, tt.f)

			got, err := tg.SendReminders(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			chats := make([]int64, 0, len(mockBot.SentMessages))
			for _, c := range mockBot.SentMessages {
				chats = append(chats, c.(tgbotapi.MessageConfig).ChatID)
			}
			if tt.chats == nil {
				assert.Empty(t, chats)
			} else {
				assert.Equal(t, tt.chats, chats)
			}
		})
	}
}

func TestPluralDays(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		1:   "1 день",
		2:   "2 дня",
		4:   "4 дня",
		5:   "5 дней",
		11:  "11 дней",
		12:  "12 дней",
		21:  "21 день",
		22:  "22 дня",
		111: "111 дней",
	}

	for n, want := range tests {
		assert.Equal(t, want, pluralDays(n))
	}
}
