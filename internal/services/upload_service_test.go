package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	storagemocks "portfolio_backend/internal/storage/mocks"
	"portfolio_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func pngOfSize(size int) []byte {
	data := make([]byte, size)
	copy(data, pngHeader)
	return data
}

func uploadRequest(kind string, data []byte) *dto.UploadRequest {
	return &dto.UploadRequest{
		Kind:     kind,
		Filename: "file.bin",
		Size:     int64(len(data)),
		File:     bytes.NewReader(data),
		UserID:   "user-1",
	}
}

func TestUploadService_Bounds(t *testing.T) {
	testCases := []struct {
		name     string
		kind     string
		data     []byte
		mock     func(store *storagemocks.MockStorage)
		wantCode int
		wantMsg  string
	}{
		{
			name: "exactly five mebibytes is accepted",
			kind: UploadKindProfilePicture,
			data: pngOfSize(5 * mib),
			mock: func(store *storagemocks.MockStorage) {
				store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), int64(5*mib), "image/png").Return(nil)
				store.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/files/" + key })
				store.EXPECT().Provider().Return("local")
			},
		},
		{
			name:     "one byte over the limit is rejected",
			kind:     UploadKindProfilePicture,
			data:     pngOfSize(5*mib + 1),
			mock:     func(*storagemocks.MockStorage) {},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File too large. Maximum size is 5MB",
		},
		{
			name:     "text file is rejected",
			kind:     UploadKindCompanyLogo,
			data:     []byte("just some plain text, not an image"),
			mock:     func(*storagemocks.MockStorage) {},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid file type",
		},
		{
			name:     "svg is not a profile picture",
			kind:     UploadKindProfilePicture,
			data:     []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`),
			mock:     func(*storagemocks.MockStorage) {},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid file type",
		},
		{
			name: "svg company logo is accepted",
			kind: UploadKindCompanyLogo,
			data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`),
			mock: func(store *storagemocks.MockStorage) {
				store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "image/svg+xml").Return(nil)
				store.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/files/" + key })
				store.EXPECT().Provider().Return("local")
			},
		},
		{
			name:     "empty file",
			kind:     UploadKindCompanyLogo,
			data:     []byte{},
			mock:     func(*storagemocks.MockStorage) {},
			wantCode: http.StatusBadRequest,
			wantMsg:  "No file provided",
		},
		{
			name:     "unknown kind",
			kind:     "resume",
			data:     pngOfSize(64),
			mock:     func(*storagemocks.MockStorage) {},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Unknown upload kind",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := storagemocks.NewMockStorage(ctrl)
			tc.mock(store)

			db := testutil.OpenTestDB(t)
			svc := NewUploadService(repositories.NewUploadRepository(), store, UploadConfig{})

			resp, err := svc.Upload(context.Background(), db, uploadRequest(tc.kind, tc.data))
			if tc.wantCode != 0 {
				appErr := requireAppError(t, err, tc.wantCode)
				assert.Equal(t, tc.wantMsg, appErr.Message)
				return
			}

			require.NoError(t, err)
			prefix := "/files/" + DefaultUploadKinds()[tc.kind].Prefix + "/" + tc.kind + "-"
			assert.True(t, strings.HasPrefix(resp.URL, prefix), resp.URL)

			var count int64
			require.NoError(t, db.Model(&models.Upload{}).Where("kind = ?", tc.kind).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestUploadService_StorageFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemocks.NewMockStorage(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bucket unavailable"))

	db := testutil.OpenTestDB(t)
	svc := NewUploadService(repositories.NewUploadRepository(), store, UploadConfig{})

	_, err := svc.Upload(context.Background(), db, uploadRequest(UploadKindProfilePicture, pngOfSize(128)))
	appErr := requireAppError(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Internal server error", appErr.Message)
}

func TestUploadService_RecordFailureRemovesStoredObject(t *testing.T) {
	testCases := []struct {
		name   string
		exists bool
		err    error
	}{
		{name: "stored object is deleted", exists: true},
		{name: "already missing object is left alone", exists: false},
		{name: "unknown state still attempts delete", err: errors.New("head failed")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := storagemocks.NewMockStorage(ctrl)

			var savedKey string
			store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
					savedKey = key
					return nil
				})
			store.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/files/" + key })
			store.EXPECT().Provider().Return("local")
			store.EXPECT().Exists(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key string) (bool, error) {
					assert.Equal(t, savedKey, key)
					return tc.exists, tc.err
				})
			if tc.exists || tc.err != nil {
				store.EXPECT().Delete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, key string) error {
						assert.Equal(t, savedKey, key)
						return nil
					})
			}

			db := testutil.OpenTestDB(t)
			require.NoError(t, db.Migrator().DropTable(&models.Upload{}))
			svc := NewUploadService(repositories.NewUploadRepository(), store, UploadConfig{})

			_, err := svc.Upload(context.Background(), db, uploadRequest(UploadKindProfilePicture, pngOfSize(128)))
			requireAppError(t, err, http.StatusInternalServerError)
		})
	}
}

func TestUploadService_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemocks.NewMockStorage(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	store.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/files/" + key }).Times(2)
	store.EXPECT().Provider().Return("local").Times(2)

	db := testutil.OpenTestDB(t)
	svc := NewUploadService(repositories.NewUploadRepository(), store, UploadConfig{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Upload(ctx, db, uploadRequest(UploadKindCompanyLogo, pngOfSize(256)))
		require.NoError(t, err)
	}

	records, err := svc.ListRecent(ctx, db, UploadKindCompanyLogo, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "image/png", records[0].MimeType)
	assert.Equal(t, "user-1", records[0].UploadedBy)

	records, err = svc.ListRecent(ctx, db, UploadKindProfilePicture, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
