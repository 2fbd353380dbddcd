package contract_test

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"signoff/bizerror"
	"signoff/domain"
	"signoff/domain/contract"
	"signoff/session"
	"signoff/testinfra"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

func buildUploadRequest(url, filename, content string, fields map[string]string) *http.Request {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if filename != "" {
		part, _ := writer.CreateFormFile("file", filename)
		_, _ = part.Write([]byte(content))
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, url, buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestContractsRestAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	contract.RegisterContractsRestApis(router)

	t.Run("should accept a multipart upload", func(t *testing.T) {
		ts := types.TimestampOfDate(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		timeBytes, err := ts.MarshalJSON()
		Expect(err).To(BeNil())
		timeString := strings.Trim(string(timeBytes), `"`)

		var uploadedVersion types.ID
		var uploadedFilename, uploadedContent string
		var payload *domain.ContractUploading
		contract.UploadContractFunc = func(versionId types.ID, u *domain.ContractUploading, filename string,
			content io.Reader, ctx context.Context, sec *session.Context) (*domain.ContractDocument, error) {
			uploadedVersion = versionId
			uploadedFilename = filename
			payload = u
			body, _ := ioutil.ReadAll(content)
			uploadedContent = string(body)
			return &domain.ContractDocument{ID: 40, VersionID: versionId, DocumentType: u.DocumentType,
				ValidFrom: ts, ValidTill: ts, StorageKey: "123/20/" + filename, Filename: filename,
				UploadTime: ts}, nil
		}

		req := buildUploadRequest(contract.VersionsApiRoot+"/20/contracts", "contract.pdf", "pdf bytes",
			map[string]string{"documentType": "MSA", "validFrom": "2024-01-01", "validTill": "2024-12-31"})
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id": "40", "versionId": "20", "documentType": "MSA",
			"validFrom": "` + timeString + `", "validTill": "` + timeString + `",
			"storageKey": "123/20/contract.pdf", "filename": "contract.pdf", "uploadTime": "` + timeString + `"}`))

		Expect(uploadedVersion).To(Equal(types.ID(20)))
		Expect(uploadedFilename).To(Equal("contract.pdf"))
		Expect(uploadedContent).To(Equal("pdf bytes"))
		Expect(payload.ValidFrom).To(Equal("2024-01-01"))
	})

	t.Run("should return 400 when the file part is missing", func(t *testing.T) {
		req := buildUploadRequest(contract.VersionsApiRoot+"/20/contracts", "", "",
			map[string]string{"documentType": "MSA", "validFrom": "2024-01-01", "validTill": "2024-12-31"})
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	t.Run("should return 400 when form fields are missing", func(t *testing.T) {
		req := buildUploadRequest(contract.VersionsApiRoot+"/20/contracts", "contract.pdf", "data",
			map[string]string{"documentType": "MSA"})
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	t.Run("should return 400 for an inverted validity period", func(t *testing.T) {
		contract.UploadContractFunc = func(versionId types.ID, u *domain.ContractUploading, filename string,
			content io.Reader, ctx context.Context, sec *session.Context) (*domain.ContractDocument, error) {
			return nil, bizerror.ErrInvalidValidityPeriod
		}
		req := buildUploadRequest(contract.VersionsApiRoot+"/20/contracts", "contract.pdf", "data",
			map[string]string{"documentType": "MSA", "validFrom": "2024-12-31", "validTill": "2024-01-01"})
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"contract.invalid_validity_period","message":"invalid validity period"}`))
	})

	t.Run("should download a document as an attachment", func(t *testing.T) {
		contract.DownloadContractFunc = func(contractId types.ID, ctx context.Context, sec *session.Context) ([]byte, *domain.ContractDocument, error) {
			return []byte("pdf bytes"), &domain.ContractDocument{ID: contractId, Filename: "contract.pdf"}, nil
		}
		req := httptest.NewRequest(http.MethodGet, contract.ContractsApiRoot+"/40/content", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("pdf bytes"))
		Expect(w.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="contract.pdf"`))
	})

	t.Run("should return 404 for a missing document", func(t *testing.T) {
		contract.DownloadContractFunc = func(contractId types.ID, ctx context.Context, sec *session.Context) ([]byte, *domain.ContractDocument, error) {
			return nil, nil, bizerror.ErrNotFound
		}
		req := httptest.NewRequest(http.MethodGet, contract.ContractsApiRoot+"/40/content", nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNotFound))
	})

	t.Run("should list contracts of a version", func(t *testing.T) {
		ts := types.TimestampOfDate(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		timeBytes, _ := ts.MarshalJSON()
		timeString := strings.Trim(string(timeBytes), `"`)

		contract.QueryContractsFunc = func(versionId types.ID, sec *session.Context) (*[]domain.ContractDocument, error) {
			return &[]domain.ContractDocument{{ID: 40, VersionID: versionId, DocumentType: "MSA",
				ValidFrom: ts, ValidTill: ts, StorageKey: "123/20/contract.pdf", Filename: "contract.pdf",
				UploadTime: ts}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, contract.VersionsApiRoot+"/20/contracts", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[{"id": "40", "versionId": "20", "documentType": "MSA",
			"validFrom": "` + timeString + `", "validTill": "` + timeString + `",
			"storageKey": "123/20/contract.pdf", "filename": "contract.pdf", "uploadTime": "` + timeString + `"}]`))
	})
}
