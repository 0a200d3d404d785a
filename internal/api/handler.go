package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ptaxfolio/internal/domain/dto"
	"github.com/guttosm/ptaxfolio/internal/ptax"
	"github.com/guttosm/ptaxfolio/internal/service"
	"github.com/guttosm/ptaxfolio/internal/statement"
)

// Handler provides the HTTP handlers for statement processing.
//
// Responsibilities:
//   - Read and validate the uploaded statement file
//   - Run the parse → filter → aggregate pipeline through the service layer
//   - Translate pipeline results and failures into response DTOs with
//     distinct status codes per outcome
type Handler struct {
	svc service.HoldingsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.HoldingsService) *Handler {
	return &Handler{svc: svc}
}

// ProcessStatement handles POST /api/v1/statements requests.
//
// The request is a multipart form with the statement CSV under the
// "statement" field. Outcomes:
//   - 200 OK: ReportResponse with holdings, declaration year, and totals.
//   - 400 Bad Request: missing or unreadable upload.
//   - 404 Not Found: statement parsed but contained no buy trades.
//   - 422 Unprocessable Entity: a trade date had no PTAX rate within the
//     backward-search window (the offending date is named in the error).
//   - 502 Bad Gateway: the rate source could not be reached.
//
// ProcessStatement godoc
// @Summary      Process a brokerage statement
// @Description  Parses an activity statement CSV, converts buy-trade costs to BRL at PTAX rates, and returns per-instrument holdings for the declaration year
// @Tags         statements
// @Accept       multipart/form-data
// @Produce      json
// @Param        statement  formData  file  true  "Activity statement CSV export"
// @Success      200  {object}  dto.ReportResponse     "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse      "No buy trades in statement"
// @Failure      422  {object}  dto.ErrorResponse      "No rate for a trade date"
// @Failure      502  {object}  dto.ErrorResponse      "Rate source unavailable"
// @Router       /api/v1/statements [post]
func (h *Handler) ProcessStatement(c *gin.Context) {
	fileHeader, err := c.FormFile("statement")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("statement file is required", err))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to open uploaded statement", err))
		return
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to read uploaded statement", err))
		return
	}

	trades, descriptions := statement.Parse(string(content))
	if len(trades) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no buy trades found in the statement", nil))
		return
	}

	report, err := h.svc.BuildReport(c.Request.Context(), trades, descriptions)
	if err != nil {
		var noRate *ptax.NoRateError
		if errors.As(err, &noRate) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("statement has a trade date with no published rate", err))
			return
		}
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch conversion rates", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}
