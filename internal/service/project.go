package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/guttosm/switchbox-service/internal/domain/model"
	"github.com/guttosm/switchbox-service/internal/metrics"
)

var (
	// ErrInvalidBoxType is returned when a box is created with an unknown type.
	ErrInvalidBoxType = errors.New("invalid box type")
	// ErrInvalidCapacity is returned when the module capacity is not legal
	// for the chosen box type.
	ErrInvalidCapacity = errors.New("module capacity not valid for box type")
)

// ProjectStore owns the project state: client name, boxes with their product
// lines, and complementary products. All mutations go through the admission
// gate in capacity.go and are atomic: either the full updated box state is
// committed or nothing changes.
//
// A single mutex guards every check-then-commit sequence, so concurrent API
// calls cannot interleave between an admission check and its commit.
type ProjectStore struct {
	mu            sync.RWMutex
	clientName    string
	boxes         []model.Box
	complementary []model.ComplementaryProduct
}

// NewProjectStore creates an empty project.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		boxes:         []model.Box{},
		complementary: []model.ComplementaryProduct{},
	}
}

// ClientName returns the current client name.
func (s *ProjectStore) ClientName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientName
}

// SetClientName updates the client name.
func (s *ProjectStore) SetClientName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientName = name
}

// AddBox creates a new box with a fresh ID and an empty product list.
// The boxType/moduleCapacity pairing is validated here; the UI layers above
// are expected to only offer legal pairs, but the store rejects mismatches.
func (s *ProjectStore) AddBox(data model.BoxData) (model.Box, error) {
	if !model.ValidBoxType(data.BoxType) {
		return model.Box{}, ErrInvalidBoxType
	}
	if !model.ValidCapacity(data.BoxType, data.ModuleCapacity) {
		return model.Box{}, ErrInvalidCapacity
	}

	box := model.Box{
		ID:             uuid.New().String(),
		Name:           data.Name,
		Area:           data.Area,
		Description:    data.Description,
		BoxType:        data.BoxType,
		ModuleCapacity: data.ModuleCapacity,
		Color:          data.Color,
		Products:       []model.BoxProductLine{},
	}

	s.mu.Lock()
	s.boxes = append(s.boxes, box)
	s.mu.Unlock()

	metrics.UpdateBoxCount(s.BoxCount())
	return box, nil
}

// UpdateBox merges the non-zero fields of data into the box. The product
// lines are never touched. Returns false if the box is unknown.
func (s *ProjectStore) UpdateBox(boxID string, data model.BoxData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(boxID)
	if idx < 0 {
		return false
	}

	box := &s.boxes[idx]
	if data.Name != "" {
		box.Name = data.Name
	}
	if data.Area != "" {
		box.Area = data.Area
	}
	if data.Description != "" {
		box.Description = data.Description
	}
	if data.Color != "" {
		box.Color = data.Color
	}
	return true
}

// DeleteBox removes the box and all its product lines. Idempotent.
func (s *ProjectStore) DeleteBox(boxID string) {
	s.mu.Lock()
	idx := s.indexOf(boxID)
	if idx >= 0 {
		s.boxes = append(s.boxes[:idx], s.boxes[idx+1:]...)
	}
	s.mu.Unlock()

	metrics.UpdateBoxCount(s.BoxCount())
}

// AddProduct installs quantity units of the product into the box. If a line
// for the SKU already exists its quantity is incremented; the admission check
// uses the added amount only. Returns false without mutating when the box is
// unknown or the product does not fit.
func (s *ProjectStore) AddProduct(boxID string, product model.Product, quantity int) bool {
	if quantity < 1 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(boxID)
	if idx < 0 {
		return false
	}

	box := &s.boxes[idx]
	if !CanAdd(*box, product, quantity) {
		metrics.RecordAdmission("rejected")
		return false
	}

	if li := box.LineBySKU(product.SKU); li >= 0 {
		box.Products[li].Quantity += quantity
	} else {
		box.Products = append(box.Products, model.BoxProductLine{
			Product:  product,
			Quantity: quantity,
		})
	}

	metrics.RecordAdmission("accepted")
	return true
}

// UpdateProductQuantity sets the line quantity to newQuantity. Only the
// module delta between current and new quantity is checked against remaining
// capacity, so decreasing always succeeds. A new quantity of zero removes
// the line. Returns false when the box or line is unknown or the delta does
// not fit.
func (s *ProjectStore) UpdateProductQuantity(boxID, sku string, newQuantity int) bool {
	if newQuantity < 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(boxID)
	if idx < 0 {
		return false
	}

	box := &s.boxes[idx]
	li := box.LineBySKU(sku)
	if li < 0 {
		return false
	}

	line := box.Products[li]
	delta := line.Product.Attributes.ModuleSize * (newQuantity - line.Quantity)
	if delta > RemainingModules(*box) {
		metrics.RecordAdmission("rejected")
		return false
	}

	if newQuantity == 0 {
		box.Products = append(box.Products[:li], box.Products[li+1:]...)
	} else {
		box.Products[li].Quantity = newQuantity
	}

	metrics.RecordAdmission("accepted")
	return true
}

// RemoveProduct deletes the line for the SKU unconditionally. Idempotent.
func (s *ProjectStore) RemoveProduct(boxID, sku string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(boxID)
	if idx < 0 {
		return
	}

	box := &s.boxes[idx]
	if li := box.LineBySKU(sku); li >= 0 {
		box.Products = append(box.Products[:li], box.Products[li+1:]...)
	}
}

// UsedModules returns the occupied modules of the box, or 0 if unknown.
func (s *ProjectStore) UsedModules(boxID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(boxID); idx >= 0 {
		return UsedModules(s.boxes[idx])
	}
	return 0
}

// RemainingModules returns the free modules of the box, or 0 if unknown.
func (s *ProjectStore) RemainingModules(boxID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(boxID); idx >= 0 {
		return RemainingModules(s.boxes[idx])
	}
	return 0
}

// BoxByID returns a copy of the box and whether it exists.
func (s *ProjectStore) BoxByID(boxID string) (model.Box, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(boxID); idx >= 0 {
		return copyBox(s.boxes[idx]), true
	}
	return model.Box{}, false
}

// Boxes returns a snapshot of all boxes in creation order.
func (s *ProjectStore) Boxes() []model.Box {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Box, len(s.boxes))
	for i, b := range s.boxes {
		out[i] = copyBox(b)
	}
	return out
}

// BoxCount returns the number of boxes.
func (s *ProjectStore) BoxCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boxes)
}

// AddComplementaryProduct appends a non-boxed product to the project.
func (s *ProjectStore) AddComplementaryProduct(p model.ComplementaryProduct) bool {
	if p.Quantity < 1 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.complementary = append(s.complementary, p)
	return true
}

// RemoveComplementaryProduct removes the first entry with the SKU. Idempotent.
func (s *ProjectStore) RemoveComplementaryProduct(sku string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.complementary {
		if p.SKU == sku {
			s.complementary = append(s.complementary[:i], s.complementary[i+1:]...)
			return
		}
	}
}

// ComplementaryProducts returns a snapshot of the complementary list.
func (s *ProjectStore) ComplementaryProducts() []model.ComplementaryProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ComplementaryProduct, len(s.complementary))
	copy(out, s.complementary)
	return out
}

// Reset clears the client name, all boxes, and all complementary products.
func (s *ProjectStore) Reset() {
	s.mu.Lock()
	s.clientName = ""
	s.boxes = []model.Box{}
	s.complementary = []model.ComplementaryProduct{}
	s.mu.Unlock()

	metrics.UpdateBoxCount(0)
}

// indexOf returns the slice index of the box or -1. Caller holds the lock.
func (s *ProjectStore) indexOf(boxID string) int {
	for i, b := range s.boxes {
		if b.ID == boxID {
			return i
		}
	}
	return -1
}

// copyBox returns a deep copy so callers cannot mutate store state.
func copyBox(b model.Box) model.Box {
	out := b
	out.Products = make([]model.BoxProductLine, len(b.Products))
	copy(out.Products, b.Products)
	return out
}
