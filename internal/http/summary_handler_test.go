package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	promdto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/switchbox-service/internal/metrics"
)

func TestSummaryHandler_GetSummary(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))
	router, _ := newTestRouter(catalog)
	boxID := createBox(t, router, "55 Box", 2)
	w := doJSON(t, router, http.MethodPost, "/api/boxes/"+boxID+"/products", gin.H{"sku": "HD4001", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Rows []struct {
				SKU        string  `json:"sku"`
				Quantity   int     `json:"quantity"`
				TotalPrice float64 `json:"total_price"`
			} `json:"rows"`
			GrandTotal float64 `json:"grand_total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Installed product plus a derived frame and adapter.
	require.Len(t, resp.Data.Rows, 3)
	assert.Positive(t, resp.Data.GrandTotal)
}

func summaryDurationSampleCount(t *testing.T) uint64 {
	t.Helper()
	var m promdto.Metric
	require.NoError(t, metrics.SummaryGenerationDuration.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestSummaryHandler_GetSummary_RecordsDurationOnce(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))
	router, _ := newTestRouter(catalog)
	createBox(t, router, "55 Box", 2)

	before := summaryDurationSampleCount(t)
	w := doJSON(t, router, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, before+1, summaryDurationSampleCount(t))
}

func TestSummaryHandler_GetFramesAdapters(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))
	router, _ := newTestRouter(catalog)
	boxID := createBox(t, router, "55 Box", 2)
	w := doJSON(t, router, http.MethodPost, "/api/boxes/"+boxID+"/products", gin.H{"sku": "HD4001", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/summary/frames-adapters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			FramesAdapters []struct {
				Type string `json:"type"`
				SKU  string `json:"sku"`
			} `json:"frames_adapters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.FramesAdapters, 2)

	types := []string{resp.Data.FramesAdapters[0].Type, resp.Data.FramesAdapters[1].Type}
	assert.Contains(t, types, "frame")
	assert.Contains(t, types, "adapter")
}

func TestSummaryHandler_GetFramesAdapters_EmptyBox(t *testing.T) {
	router, _ := newTestRouter(newFakeCatalog())
	createBox(t, router, "55 Box", 2)

	w := doJSON(t, router, http.MethodGet, "/api/summary/frames-adapters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			FramesAdapters []interface{} `json:"frames_adapters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.FramesAdapters)
}

func TestSummaryHandler_ExportCSV(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))
	router, _ := newTestRouter(catalog)

	w := doJSON(t, router, http.MethodPut, "/api/project/client", gin.H{"client_name": "Cohen Residence"})
	require.Equal(t, http.StatusOK, w.Code)

	boxID := createBox(t, router, "55 Box", 2)
	w = doJSON(t, router, http.MethodPost, "/api/boxes/"+boxID+"/products", gin.H{"sku": "HD4001", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/summary/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Cohen Residence_summary.csv")

	body := w.Body.String()
	assert.Contains(t, body, "Cohen Residence")
	assert.Contains(t, body, "HD4001")
	assert.Contains(t, body, "FRAME-55BOX-2")
	assert.Contains(t, body, "ADAPTER-55BOX-2")
}
