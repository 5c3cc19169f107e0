package handlers

import (
	"strconv"

	"github.com/starboy1402/GreenMed/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogHandler serves the plant, disease and medicine reference tables.
// Reads are public; writes are admin-only (enforced at the route level).
type CatalogHandler struct {
	DB *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{DB: db}
}

// Plants

// GetPlants - GET /api/plants
func (h *CatalogHandler) GetPlants(c *fiber.Ctx) error {
	var plants []models.Plant
	query := h.DB
	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Find(&plants).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch plants")
	}
	return c.JSON(fiber.Map{"data": plants})
}

// GetPlant - GET /api/plants/:id
func (h *CatalogHandler) GetPlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := h.findByID(c, &plant, "Plant not found"); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": plant})
}

// CreatePlant - POST /api/plants
func (h *CatalogHandler) CreatePlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := c.BodyParser(&plant); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if plant.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	plant.ID = 0
	if err := h.DB.Create(&plant).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create plant")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": plant})
}

// UpdatePlant - PUT /api/plants/:id
func (h *CatalogHandler) UpdatePlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := h.findByID(c, &plant, "Plant not found"); err != nil {
		return err
	}

	var updated models.Plant
	if err := c.BodyParser(&updated); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	updated.ID = plant.ID

	if err := h.DB.Save(&updated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update plant")
	}
	return c.JSON(fiber.Map{"data": updated})
}

// DeletePlant - DELETE /api/plants/:id
func (h *CatalogHandler) DeletePlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := h.findByID(c, &plant, "Plant not found"); err != nil {
		return err
	}
	if err := h.DB.Delete(&plant).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete plant")
	}
	return c.JSON(fiber.Map{"message": "Plant deleted"})
}

// Diseases

// GetDiseases - GET /api/diseases
func (h *CatalogHandler) GetDiseases(c *fiber.Ctx) error {
	var diseases []models.Disease
	if err := h.DB.Find(&diseases).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch diseases")
	}
	return c.JSON(fiber.Map{"data": diseases})
}

// GetDisease - GET /api/diseases/:id
func (h *CatalogHandler) GetDisease(c *fiber.Ctx) error {
	var disease models.Disease
	if err := h.findByID(c, &disease, "Disease not found"); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": disease})
}

// CreateDisease - POST /api/diseases
func (h *CatalogHandler) CreateDisease(c *fiber.Ctx) error {
	var disease models.Disease
	if err := c.BodyParser(&disease); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if disease.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	disease.ID = 0
	if err := h.DB.Create(&disease).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create disease")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": disease})
}

// UpdateDisease - PUT /api/diseases/:id
func (h *CatalogHandler) UpdateDisease(c *fiber.Ctx) error {
	var disease models.Disease
	if err := h.findByID(c, &disease, "Disease not found"); err != nil {
		return err
	}

	var updated models.Disease
	if err := c.BodyParser(&updated); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	updated.ID = disease.ID

	if err := h.DB.Save(&updated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update disease")
	}
	return c.JSON(fiber.Map{"data": updated})
}

// DeleteDisease - DELETE /api/diseases/:id
func (h *CatalogHandler) DeleteDisease(c *fiber.Ctx) error {
	var disease models.Disease
	if err := h.findByID(c, &disease, "Disease not found"); err != nil {
		return err
	}
	if err := h.DB.Delete(&disease).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete disease")
	}
	return c.JSON(fiber.Map{"message": "Disease deleted"})
}

// Medicines

// GetMedicines - GET /api/medicines
func (h *CatalogHandler) GetMedicines(c *fiber.Ctx) error {
	var medicines []models.Medicine
	if err := h.DB.Find(&medicines).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch medicines")
	}
	return c.JSON(fiber.Map{"data": medicines})
}

// GetMedicine - GET /api/medicines/:id
func (h *CatalogHandler) GetMedicine(c *fiber.Ctx) error {
	var medicine models.Medicine
	if err := h.findByID(c, &medicine, "Medicine not found"); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": medicine})
}

// CreateMedicine - POST /api/medicines
func (h *CatalogHandler) CreateMedicine(c *fiber.Ctx) error {
	var medicine models.Medicine
	if err := c.BodyParser(&medicine); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if medicine.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	medicine.ID = 0
	if err := h.DB.Create(&medicine).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create medicine")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": medicine})
}

// UpdateMedicine - PUT /api/medicines/:id
func (h *CatalogHandler) UpdateMedicine(c *fiber.Ctx) error {
	var medicine models.Medicine
	if err := h.findByID(c, &medicine, "Medicine not found"); err != nil {
		return err
	}

	var updated models.Medicine
	if err := c.BodyParser(&updated); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	updated.ID = medicine.ID

	if err := h.DB.Save(&updated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update medicine")
	}
	return c.JSON(fiber.Map{"data": updated})
}

// DeleteMedicine - DELETE /api/medicines/:id
func (h *CatalogHandler) DeleteMedicine(c *fiber.Ctx) error {
	var medicine models.Medicine
	if err := h.findByID(c, &medicine, "Medicine not found"); err != nil {
		return err
	}
	if err := h.DB.Delete(&medicine).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete medicine")
	}
	return c.JSON(fiber.Map{"message": "Medicine deleted"})
}

func (h *CatalogHandler) findByID(c *fiber.Ctx, dest interface{}, notFound string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.DB.First(dest, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	return nil
}
