package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	v1 "github.com/neuralcash/backend/internal/controllers/v1"
	"github.com/neuralcash/backend/internal/ocr"
	"github.com/neuralcash/backend/internal/storage"
	"github.com/neuralcash/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCaptureReceipt() {
	ocrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "/recognize", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "SUPERMART\nTOTAL 42.00"})
	}))
	defer ocrServer.Close()

	var uploadPath string
	storageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploadPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer storageServer.Close()

	co := test.Controller()
	co.OCR = ocr.New(ocrServer.URL)
	co.Storage = storage.New(storageServer.URL, "service-key", "receipts")

	userID := uuid.New()
	body, headers := test.MultipartFile(suite.T(), "receipt", "receipt.jpg", []byte("fake image bytes"))
	headers["Authorization"] = "Bearer " + test.Token(suite.T(), userID)

	recorder := test.Request(co, suite.T(), http.MethodPost, "/api/v1/transactions/receipt", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Status string            `json:"status"`
		Data   v1.ReceiptCapture `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "SUPERMART\nTOTAL 42.00", response.Data.Text)

	// Structured extraction is not implemented, the fields stay unset
	assert.Nil(suite.T(), response.Data.Amount)
	assert.Nil(suite.T(), response.Data.Date)
	assert.Nil(suite.T(), response.Data.Merchant)
	assert.Empty(suite.T(), response.Data.Items)

	// The file is stored under the user's prefix in the receipt bucket
	require.True(suite.T(), strings.HasPrefix(uploadPath, "/storage/v1/object/receipts/"+userID.String()+"/"), "upload path is %s", uploadPath)
	assert.True(suite.T(), strings.HasSuffix(uploadPath, "-receipt.jpg"))
	assert.Contains(suite.T(), response.Data.ReceiptURL, "/storage/v1/object/public/receipts/"+userID.String()+"/")
}

func (suite *TestSuiteStandard) TestCaptureReceiptNoFile() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/transactions/receipt", nil, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCaptureReceiptOCRDown() {
	ocrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ocrServer.Close()

	co := test.Controller()
	co.OCR = ocr.New(ocrServer.URL)

	body, headers := test.MultipartFile(suite.T(), "receipt", "receipt.jpg", []byte("fake image bytes"))
	headers["Authorization"] = "Bearer " + test.Token(suite.T(), uuid.New())

	recorder := test.Request(co, suite.T(), http.MethodPost, "/api/v1/transactions/receipt", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
