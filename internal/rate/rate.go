package rate

import (
	"errors"
	"math"
	"strings"
)

// BaseRatePerKmPerTon is the sea freight base rate in USD per km per metric ton.
const BaseRatePerKmPerTon = 0.5

// Currency labels every quote. No conversion is performed.
const Currency = "USD"

// ContainerSize is a normalized container category.
type ContainerSize string

const (
	ContainerSmall ContainerSize = "20ft"
	ContainerLarge ContainerSize = "40ft"
)

// GoodsType is a normalized cargo category.
type GoodsType string

const (
	GoodsGeneral    GoodsType = "general"
	GoodsHazardous  GoodsType = "hazardous"
	GoodsPerishable GoodsType = "perishable"
)

// ContainerSizes lists the accepted container sizes in display order.
func ContainerSizes() []ContainerSize {
	return []ContainerSize{ContainerSmall, ContainerLarge}
}

// GoodsTypes lists the accepted goods types in display order.
func GoodsTypes() []GoodsType {
	return []GoodsType{GoodsGeneral, GoodsHazardous, GoodsPerishable}
}

// Factor returns the container multiplier. Unknown sizes yield 0.
func (c ContainerSize) Factor() float64 {
	switch c {
	case ContainerLarge:
		return 1.5
	case ContainerSmall:
		return 1.0
	default:
		return 0
	}
}

// Factor returns the goods multiplier. Unknown types yield 0.
func (g GoodsType) Factor() float64 {
	switch g {
	case GoodsHazardous:
		return 2.0
	case GoodsPerishable:
		return 1.5
	case GoodsGeneral:
		return 1.0
	default:
		return 0
	}
}

// ErrInvalidInput matches every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownProvider is returned by NewByName for unregistered provider names.
var ErrUnknownProvider = errors.New("unknown rate provider")

// InvalidInputError reports why a request was rejected.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

const (
	reasonNonPositive = "weight and distance must be positive numbers"
	reasonContainer   = "container size must be '20ft' or '40ft'"
	reasonGoods       = "goods type must be 'general', 'hazardous', or 'perishable'"
	reasonOverflow    = "weight and distance are too large"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseContainerSize matches s case-insensitively against the known sizes.
func ParseContainerSize(s string) (ContainerSize, error) {
	c := ContainerSize(normalize(s))
	if c.Factor() == 0 {
		return "", &InvalidInputError{Field: "container_size", Reason: reasonContainer}
	}
	return c, nil
}

// ParseGoodsType matches s case-insensitively against the known goods types.
func ParseGoodsType(s string) (GoodsType, error) {
	g := GoodsType(normalize(s))
	if g.Factor() == 0 {
		return "", &InvalidInputError{Field: "goods_type", Reason: reasonGoods}
	}
	return g, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Request is the input of a single rate calculation.
type Request struct {
	WeightKg      float64
	DistanceKm    float64
	ContainerSize string
	GoodsType     string
}

// Validate checks every field before any arithmetic happens.
func (r Request) Validate() (ContainerSize, GoodsType, error) {
	if !positive(r.WeightKg) || !positive(r.DistanceKm) {
		field := "weight_kg"
		if positive(r.WeightKg) {
			field = "distance_km"
		}
		return "", "", &InvalidInputError{Field: field, Reason: reasonNonPositive}
	}
	c, err := ParseContainerSize(r.ContainerSize)
	if err != nil {
		return "", "", err
	}
	g, err := ParseGoodsType(r.GoodsType)
	if err != nil {
		return "", "", err
	}
	return c, g, nil
}

// Compute estimates the sea freight cost for a shipment. The returned amount
// keeps full precision; see Quote.Display for the two-decimal form.
func Compute(weightKg, distanceKm float64, containerSize, goodsType string) (Quote, error) {
	return Request{
		WeightKg:      weightKg,
		DistanceKm:    distanceKm,
		ContainerSize: containerSize,
		GoodsType:     goodsType,
	}.Quote()
}

// Quote validates r and computes its estimate.
func (r Request) Quote() (Quote, error) {
	c, g, err := r.Validate()
	if err != nil {
		return Quote{}, err
	}
	weightTons := r.WeightKg / 1000
	amount := BaseRatePerKmPerTon * weightTons * r.DistanceKm * c.Factor() * g.Factor()
	if math.IsInf(amount, 0) {
		return Quote{}, &InvalidInputError{Field: "weight_kg", Reason: reasonOverflow}
	}
	return Quote{
		Currency:      Currency,
		Amount:        amount,
		ContainerSize: c,
		GoodsType:     g,
	}, nil
}

// Estimator defines the interface for rate estimation engines.
type Estimator interface {
	Estimate(req Request) (Quote, error)
}

// SeaFreight prices ocean shipments by weight, distance, container and cargo.
type SeaFreight struct{}

func NewSeaFreight() *SeaFreight { return &SeaFreight{} }

func (s *SeaFreight) Estimate(req Request) (Quote, error) {
	return req.Quote()
}

// NewByName returns an Estimator by provider name.
func NewByName(name string) (Estimator, error) {
	switch normalize(name) {
	case "sea", "sea-freight", "":
		return NewSeaFreight(), nil
	default:
		return nil, ErrUnknownProvider
	}
}
