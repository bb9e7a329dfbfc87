package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	service "github.com/vhsenna/parts-unlimited/internal/service/words"
	"github.com/vhsenna/parts-unlimited/internal/service/words/mocks"
	"github.com/vhsenna/parts-unlimited/internal/wordfreq"
	"github.com/vhsenna/parts-unlimited/platform/logger"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

func TestMostCommonWords(t *testing.T) {
	logger.SetNopLogger()

	testCases := []struct {
		name               string
		descriptions       []string
		repoErr            error
		expectedStatusCode int
		checkResponse      func(t *testing.T, body []byte)
	}{
		{
			name: "ranked words",
			descriptions: []string{
				"heavy load computing generator",
				"light load computing",
				"heavy computing load",
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp apiv1.MostCommonWordsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				// Key order is part of the contract, so compare raw text.
				assert.Equal(t,
					`{"load":3,"computing":3,"heavy":2,"generator":1,"light":1}`,
					string(resp.MostCommonWords),
				)
			},
		},
		{
			name:               "single description",
			descriptions:       []string{"Alpha beta"},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"most_common_words":{"alpha":1,"beta":1}}`, string(body))
			},
		},
		{
			name:               "common words are counted",
			descriptions:       []string{"the and but"},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"most_common_words":{"the":1,"and":1,"but":1}}`, string(body))
			},
		},
		{
			name:               "no parts",
			descriptions:       []string{},
			expectedStatusCode: http.StatusNoContent,
			checkResponse: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"message":"No descriptions found"}`, string(body))
			},
		},
		{
			name:               "no words",
			descriptions:       []string{"", "!!! ...", "  "},
			expectedStatusCode: http.StatusNoContent,
			checkResponse: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"message":"No words found in descriptions"}`, string(body))
			},
		},
		{
			name:               "storage failure",
			repoErr:            errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, body []byte) {
				var resp apiv1.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "storage error", resp.Error)
				assert.NotContains(t, string(body), "connection refused")
				assert.NotContains(t, string(body), "words.service")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := mocks.NewMockDescriptionReader(t)
			repo.On("Descriptions", mock.Anything).Return(tc.descriptions, tc.repoErr).Once()

			svc := service.NewWordsService(repo, wordfreq.New(wordfreq.DefaultTopN), time.Second)

			r := chi.NewRouter()
			r.Use(chimw.StripSlashes)
			NewWordsHandler(svc).Register(r)

			// Act
			req := httptest.NewRequest(http.MethodGet, "/most-common-words/", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			tc.checkResponse(t, rec.Body.Bytes())
		})
	}
}

func TestMostCommonWordsRecomputes(t *testing.T) {
	logger.SetNopLogger()

	repo := mocks.NewMockDescriptionReader(t)
	repo.On("Descriptions", mock.Anything).Return([]string{"gear"}, nil).Once()
	repo.On("Descriptions", mock.Anything).Return([]string{"bolt bolt"}, nil).Once()

	h := NewWordsHandler(service.NewWordsService(repo, wordfreq.New(wordfreq.DefaultTopN), time.Second))

	first := httptest.NewRecorder()
	h.MostCommonWords(first, httptest.NewRequest(http.MethodGet, "/most-common-words", nil))
	second := httptest.NewRecorder()
	h.MostCommonWords(second, httptest.NewRequest(http.MethodGet, "/most-common-words", nil))

	assert.JSONEq(t, `{"most_common_words":{"gear":1}}`, first.Body.String())
	assert.JSONEq(t, `{"most_common_words":{"bolt":2}}`, second.Body.String())
}
