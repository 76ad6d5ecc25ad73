package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/vocabdrill/internal/models"
	mock_service "github.com/DanRulev/vocabdrill/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWordServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockWordRI)) *WordS {
	repo := mock_service.NewMockWordRI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewWordService(repo, zap.NewNop())
}

func TestParseWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    models.Word
		wantErr bool
	}{
		{name: "simple", input: "кошка - cat", want: models.Word{Russian: "кошка", English: "cat"}},
		{name: "extra spaces", input: "  большой дом  -  big house ", want: models.Word{Russian: "большой дом", English: "big house"}},
		{name: "hyphenated english", input: "тёща - mother-in-law", want: models.Word{Russian: "тёща", English: "mother-in-law"}},
		{name: "no separator", input: "кошка-cat", wantErr: true},
		{name: "empty russian", input: " - cat", wantErr: true},
		{name: "empty english", input: "кошка - ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWord(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordS_AddWord(t *testing.T) {
	t.Parallel()

	word := models.Word{Russian: "кошка", English: "cat"}

	tests := []struct {
		name    string
		input   string
		f       func(*mock_service.MockWordRI)
		wantErr error
	}{
		{
			name:  "success",
			input: "кошка - cat",
			f: func(mwr *mock_service.MockWordRI) {
				mwr.EXPECT().WordExists(gomock.Any(), int64(1), "cat").Return(false, nil)
				mwr.EXPECT().AddUserWord(gomock.Any(), int64(1), word).Return(true, nil)
			},
		},
		{
			name:    "error: bad format",
			input:   "кошка cat",
			wantErr: ErrBadFormat,
		},
		{
			name:  "error: exists",
			input: "кошка - cat",
			f: func(mwr *mock_service.MockWordRI) {
				mwr.EXPECT().WordExists(gomock.Any(), int64(1), "cat").Return(true, nil)
			},
			wantErr: ErrWordExists,
		},
		{
			name:  "error: lost insert race",
			input: "кошка - cat",
			f: func(mwr *mock_service.MockWordRI) {
				mwr.EXPECT().WordExists(gomock.Any(), int64(1), "cat").Return(false, nil)
				mwr.EXPECT().AddUserWord(gomock.Any(), int64(1), word).Return(false, nil)
			},
			wantErr: ErrWordExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := newWordServiceMock(t, ctrl, tt.f)

			got, err := w.AddWord(context.Background(), 1, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, word, got)
		})
	}
}

func TestWordS_AddWordRepositoryError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db down")
	w := newWordServiceMock(t, ctrl, func(mwr *mock_service.MockWordRI) {
		mwr.EXPECT().WordExists(gomock.Any(), int64(1), "cat").Return(false, dbErr)
	})

	_, err := w.AddWord(context.Background(), 1, "кошка - cat")

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "check word", perr.Op)
	assert.ErrorIs(t, err, dbErr)
}

func TestWordS_DeleteWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		english string
		f       func(*mock_service.MockWordRI)
		wantErr error
	}{
		{
			name:    "success",
			english: " cat ",
			f: func(mwr *mock_service.MockWordRI) {
				mwr.EXPECT().DeleteUserWord(gomock.Any(), int64(1), "cat").Return(true, nil)
			},
		},
		{
			name:    "error: not found",
			english: "cat",
			f: func(mwr *mock_service.MockWordRI) {
				mwr.EXPECT().DeleteUserWord(gomock.Any(), int64(1), "cat").Return(false, nil)
			},
			wantErr: ErrWordNotFound,
		},
		{
			name:    "error: blank",
			english: "  ",
			wantErr: ErrWordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := newWordServiceMock(t, ctrl, tt.f)

			err := w.DeleteWord(context.Background(), 1, tt.english)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWordS_UserWords(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := newWordServiceMock(t, ctrl, func(mwr *mock_service.MockWordRI) {
		gomock.InOrder(
			mwr.EXPECT().UserWords(gomock.Any(), int64(1)).Return(nil, nil),
			mwr.EXPECT().UserWords(gomock.Any(), int64(1)).Return([]models.UserWord{
				{Russian: "собака", English: "dog", CorrectAnswers: 1, TotalAttempts: 3, CreatedAt: time.Now()},
				{Russian: "кошка", English: "cat", LastPracticed: sql.NullTime{}},
			}, nil),
		)
	})

	_, err := w.UserWords(context.Background(), 1)
	require.ErrorIs(t, err, ErrNoUserWords)

	got, err := w.UserWords(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "📝 Ваши слова:\n\n"+
		"1. собака - dog\n📊 Правильно: 1/3 (33.3%)\n\n"+
		"2. кошка - cat\n📊 Правильно: 0/0 (0.0%)\n\n"+
		"Всего слов: 2", got)
}
