package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/models"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/store"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/validations"
)

type ProductController struct {
	Products store.ProductStore
}

func NewProductController(products store.ProductStore) *ProductController {
	return &ProductController{Products: products}
}

// GetAllProducts - public catalog listing with pagination
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	p := utils.GetPagination(c)

	products, total, err := pc.Products.List(c.Request.Context(), int64(p.Skip), int64(p.Limit))
	if err != nil {
		respondError(c, "list products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     p.Page,
		"limit":    p.Limit,
		"total":    total,
		"products": products,
	})
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, err := pc.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req validations.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Image:             req.Image,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
		ShowOnHome:        req.ShowOnHome,
		ManagerEmail:      req.ManagerEmail,
		CreatedAt:         time.Now(),
	}

	if err := pc.Products.Create(c.Request.Context(), &product); err != nil {
		respondError(c, "create product", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "product created",
		"product": product,
	})
}

// UpdateProduct replaces any caller-supplied fields except the id.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := pc.Products.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "delete product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// GetManagerProducts - products owned by one manager. Ownership is
// enforced by the route middleware.
func (pc *ProductController) GetManagerProducts(c *gin.Context) {
	products, err := pc.Products.ListByManager(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "list manager products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) UpdateHomeStatus(c *gin.Context) {
	var req validations.HomeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.Products.SetHomeStatus(c.Request.Context(), c.Param("id"), req.ShowOnHome); err != nil {
		respondError(c, "update home status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "home status updated"})
}
