package offering

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("offering name cannot be empty")
	ErrNegativePrice    = errors.New("offering price cannot be negative")
	ErrEmptyProcessor   = errors.New("specification processor cannot be empty")
	ErrInvalidCapacity  = errors.New("specification capacities must be positive")
	ErrInvalidBandwidth = errors.New("specification network speed must be positive")
)

// Offering is a rentable virtual-server product. Inactive offerings stay in
// storage but are invisible to catalog reads and reject new order lines.
type Offering struct {
	name        string
	image       string
	description string
	price       int64
}

func New(name, image, description string, price int64) (*Offering, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Offering{
		name:        name,
		image:       image,
		description: strings.TrimSpace(description),
		price:       price,
	}, nil
}

func (o *Offering) Name() string        { return o.name }
func (o *Offering) Image() string       { return o.image }
func (o *Offering) Description() string { return o.description }
func (o *Offering) Price() int64        { return o.price }

// Specification holds the structured hardware attributes of an offering.
type Specification struct {
	processor   string
	ramMB       int32
	diskGB      int32
	networkMbps int32
}

func NewSpecification(processor string, ramMB, diskGB, networkMbps int32) (*Specification, error) {
	processor = strings.TrimSpace(processor)
	if processor == "" {
		return nil, ErrEmptyProcessor
	}
	if ramMB <= 0 || diskGB <= 0 {
		return nil, ErrInvalidCapacity
	}
	if networkMbps <= 0 {
		return nil, ErrInvalidBandwidth
	}
	return &Specification{
		processor:   processor,
		ramMB:       ramMB,
		diskGB:      diskGB,
		networkMbps: networkMbps,
	}, nil
}

func (s *Specification) Processor() string  { return s.processor }
func (s *Specification) RAMMB() int32       { return s.ramMB }
func (s *Specification) DiskGB() int32      { return s.diskGB }
func (s *Specification) NetworkMbps() int32 { return s.networkMbps }
