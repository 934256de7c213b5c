package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmacy-assistant/internal/infra/pdf"
	"pharmacy-assistant/internal/services"
)

type Handler struct {
	prescriptions   *services.PrescriptionService
	inventory       *services.InventoryService
	orders          *services.OrderService
	recommendations *services.RecommendationService
	reports         *services.ReportService
	forms           *pdf.FormRenderer
}

func NewHandler(
	prescriptions *services.PrescriptionService,
	inventory *services.InventoryService,
	orders *services.OrderService,
	recommendations *services.RecommendationService,
	reports *services.ReportService,
	forms *pdf.FormRenderer,
) *Handler {
	return &Handler{
		prescriptions:   prescriptions,
		inventory:       inventory,
		orders:          orders,
		recommendations: recommendations,
		reports:         reports,
		forms:           forms,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/prescriptions/scan", h.ScanPrescription)

	api.GET("/medicines", h.ListMedicines)
	api.POST("/medicines", h.AddMedicine)
	api.GET("/medicines/availability", h.CheckAvailability)
	api.GET("/medicines/recommendations", h.Recommendations)

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	api.POST("/reports", h.UploadReport)
	api.GET("/reports/search", h.SearchReports)

	api.POST("/order-forms", h.GenerateOrderForm)
}

// ScanPrescription accepts a multipart prescription image under "file" and
// returns the raw extracted text, the parsed record, and the inventory
// check for the parsed medicine.
func (h *Handler) ScanPrescription(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file content"})
		return
	}

	result, err := h.prescriptions.Scan(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListMedicines(c *gin.Context) {
	medicines, err := h.inventory.ListMedicines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *Handler) AddMedicine(c *gin.Context) {
	var req AddMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := reqToMedicine(req)
	if err := h.inventory.AddMedicine(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter required"})
		return
	}

	available, medicine, err := h.inventory.Lookup(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, AvailabilityResponse{Available: available, Medicine: medicine})
}

func (h *Handler) Recommendations(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter required"})
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{
		MedicineName:    name,
		Recommendations: h.recommendations.Recommend(c.Request.Context(), name),
	})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req.MedicineName, req.Quantity, req.PatientName, req.DoctorName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, CreateOrderResponse{ID: order.ID})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrderById(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orders.UpdateOrderStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// UploadReport stores a PDF report under the reports directory, making it
// searchable.
func (h *Handler) UploadReport(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file content"})
		return
	}

	path, err := h.reports.SaveReport(file.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}

func (h *Handler) SearchReports(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword query parameter required"})
		return
	}

	hits, err := h.reports.Search(keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"keyword": keyword, "results": hits})
}

// GenerateOrderForm renders a PDF order form for unavailable medicines and
// streams it back as an attachment.
func (h *Handler) GenerateOrderForm(c *gin.Context) {
	var req OrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no medicine data entered"})
		return
	}

	path, err := h.forms.Render(req.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, "Medicine_Order.pdf")
}
