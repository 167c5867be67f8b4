package chat

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Zammmm09/StockMate/internal/domain/entity"
)

// ItemSlots fields of an add-item command. A nil field was not found in the message.
type ItemSlots struct {
	ProductName *string
	SKU         *string
	Quantity    *int
	Price       *decimal.Decimal
	Category    *string
	Warehouse   *string // warehouse name as written by the user
}

// Empty reports whether no field was extracted.
func (s ItemSlots) Empty() bool {
	return s.ProductName == nil && s.SKU == nil && s.Quantity == nil &&
		s.Price == nil && s.Category == nil && s.Warehouse == nil
}

// Merge fills the fields still nil in s from o.
func (s ItemSlots) Merge(o ItemSlots) ItemSlots {
	if s.ProductName == nil {
		s.ProductName = o.ProductName
	}
	if s.SKU == nil {
		s.SKU = o.SKU
	}
	if s.Quantity == nil {
		s.Quantity = o.Quantity
	}
	if s.Price == nil {
		s.Price = o.Price
	}
	if s.Category == nil {
		s.Category = o.Category
	}
	if s.Warehouse == nil {
		s.Warehouse = o.Warehouse
	}
	return s
}

// ResolveWarehouse finds the warehouse whose name equals the extracted one, ignoring case.
func (s ItemSlots) ResolveWarehouse(warehouses []*entity.Warehouse) *entity.Warehouse {
	if s.Warehouse == nil {
		return nil
	}
	want := Lower(*s.Warehouse)
	for _, w := range warehouses {
		if Lower(w.Name) == want {
			return w
		}
	}
	return nil
}

// WarehouseSlots fields of an add-warehouse command.
type WarehouseSlots struct {
	Name     *string
	Location *string
	Capacity *int
}

// Empty reports whether no field was extracted.
func (s WarehouseSlots) Empty() bool {
	return s.Name == nil && s.Location == nil && s.Capacity == nil
}

// Merge fills the fields still nil in s from o.
func (s WarehouseSlots) Merge(o WarehouseSlots) WarehouseSlots {
	if s.Name == nil {
		s.Name = o.Name
	}
	if s.Location == nil {
		s.Location = o.Location
	}
	if s.Capacity == nil {
		s.Capacity = o.Capacity
	}
	return s
}

// ItemStrategy one way of reading item fields out of a message.
type ItemStrategy interface {
	ExtractItem(message string) ItemSlots
}

// WarehouseStrategy one way of reading warehouse fields out of a message.
type WarehouseStrategy interface {
	ExtractWarehouse(message string) WarehouseSlots
}

var (
	itemNameRe      = regexp.MustCompile(`(?i)(?:product\s+name|item\s+name|name):\s*([^,\n]+?)(?:,|\s+(?:sku|quantity|price|category|warehouse)|$)`)
	itemSKURe       = regexp.MustCompile(`(?i)sku:\s*([A-Z0-9\-]+)`)
	itemQuantityRe  = regexp.MustCompile(`(?i)(?:quantity|qty|amount):\s*(\d+)`)
	itemPriceRe     = regexp.MustCompile(`(?i)(?:price|cost):\s*\$?(\d+(?:\.\d{1,2})?)`)
	itemCategoryRe  = regexp.MustCompile(`(?i)category:\s*([^,\n]+?)(?:,|\s+warehouse|$)`)
	itemWarehouseRe = regexp.MustCompile(`(?i)warehouse:\s*([^,\n]+?)(?:,|$)`)
	itemNaturalRe   = regexp.MustCompile(`(?i)(?:called|named|product|item)\s+([A-Za-z0-9\s]+?)(?:\s+(?:sku|quantity|qty|price|category|warehouse|,|$))`)

	whNameRe            = regexp.MustCompile(`(?i)(?:warehouse\s+)?name:\s*([^,\n]+?)(?:,|\s+location:)`)
	whLocationRe        = regexp.MustCompile(`(?i)location:\s*([^,\n]+?)(?:,|\s+capacity:|\s*$)`)
	whCapacityRe        = regexp.MustCompile(`(?i)capacity:\s*(\d+)`)
	whNaturalNameRe     = regexp.MustCompile(`(?i)\b(?:called|named|name:)\s+([A-Za-z0-9\s]+?)\s+(?:(?:at|in|location|with|capacity)\b|,|$)`)
	whNaturalLabelRe    = regexp.MustCompile(`(?i)\bwarehouse:?\s+([A-Za-z0-9\s]+?)\s+(?:(?:at|in|location|with|capacity)\b|,|$)`)
	whNaturalLocationRe = regexp.MustCompile(`(?i)\b(?:at|in|location:?)\s+([A-Za-z0-9\s,]+?)\s+(?:(?:with|capacity)\b|,|$)`)
	whNaturalCapacityRe = regexp.MustCompile(`(?i)(?:capacity|cap:?|size:?)\s+(\d+)`)

	segmentNameRe     = regexp.MustCompile(`(?i)name`)
	segmentLocationRe = regexp.MustCompile(`(?i)location`)
	segmentCapacityRe = regexp.MustCompile(`(?i)capacity`)
	segmentNamePrefix = regexp.MustCompile(`(?i).*name:?\s*`)
	segmentLocPrefix  = regexp.MustCompile(`(?i).*location:?\s*`)
	digitsRe          = regexp.MustCompile(`(\d+)`)

	naturalStopWords = map[string]bool{"at": true, "in": true, "location": true, "with": true, "capacity": true}
)

// StructuredItemStrategy reads "Label: value" pairs such as
// "Product Name: Laptop, SKU: LAP-001, Quantity: 50, Price: 999".
type StructuredItemStrategy struct{}

func (StructuredItemStrategy) ExtractItem(message string) ItemSlots {
	var s ItemSlots
	s.ProductName = textGroup(itemNameRe, message)
	if sku := textGroup(itemSKURe, message); sku != nil {
		upper := strings.ToUpper(*sku)
		s.SKU = &upper
	}
	s.Quantity = intGroup(itemQuantityRe, message)
	if m := itemPriceRe.FindStringSubmatch(message); m != nil {
		if p, err := decimal.NewFromString(m[1]); err == nil {
			s.Price = &p
		}
	}
	s.Category = textGroup(itemCategoryRe, message)
	s.Warehouse = textGroup(itemWarehouseRe, message)
	return s
}

// NamedItemStrategy reads the product name from phrasing like "item called Desk Lamp sku: ...".
type NamedItemStrategy struct{}

func (NamedItemStrategy) ExtractItem(message string) ItemSlots {
	return ItemSlots{ProductName: textGroup(itemNaturalRe, message)}
}

// StructuredWarehouseStrategy reads "Warehouse Name: X, Location: Y, Capacity: Z".
type StructuredWarehouseStrategy struct{}

func (StructuredWarehouseStrategy) ExtractWarehouse(message string) WarehouseSlots {
	return WarehouseSlots{
		Name:     textGroup(whNameRe, message),
		Location: textGroup(whLocationRe, message),
		Capacity: intGroup(whCapacityRe, message),
	}
}

// NaturalWarehouseStrategy reads "warehouse called X at Y with capacity Z".
// "called"/"named" take precedence over a name written right after "warehouse".
// Keywords only count as whole words, so "in" inside "Main" is not a location marker.
type NaturalWarehouseStrategy struct{}

func (NaturalWarehouseStrategy) ExtractWarehouse(message string) WarehouseSlots {
	name := textGroup(whNaturalNameRe, message)
	if name == nil {
		name = textGroup(whNaturalLabelRe, message)
	}
	if name != nil && naturalStopWords[Lower(*name)] {
		// "add warehouse with capacity 500": the marker itself is not a name
		name = nil
	}
	return WarehouseSlots{
		Name:     name,
		Location: textGroup(whNaturalLocationRe, message),
		Capacity: intGroup(whNaturalCapacityRe, message),
	}
}

// SegmentWarehouseStrategy splits the message on commas and labels each
// segment by the word it contains. Needs at least three segments.
type SegmentWarehouseStrategy struct{}

func (SegmentWarehouseStrategy) ExtractWarehouse(message string) WarehouseSlots {
	var s WarehouseSlots
	parts := strings.Split(message, ",")
	if len(parts) < 3 {
		return s
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch {
		case s.Name == nil && segmentNameRe.MatchString(part):
			s.Name = nonEmpty(segmentNamePrefix.ReplaceAllString(part, ""))
		case s.Location == nil && segmentLocationRe.MatchString(part):
			s.Location = nonEmpty(segmentLocPrefix.ReplaceAllString(part, ""))
		case s.Capacity == nil && segmentCapacityRe.MatchString(part):
			s.Capacity = intGroup(digitsRe, part)
		}
	}
	return s
}

// DefaultItemStrategies the item strategies in priority order.
var DefaultItemStrategies = []ItemStrategy{StructuredItemStrategy{}, NamedItemStrategy{}}

// ExtractItem runs the default item strategies and merges their results.
func ExtractItem(message string) ItemSlots {
	var s ItemSlots
	for _, st := range DefaultItemStrategies {
		s = s.Merge(st.ExtractItem(message))
	}
	return s
}

// ExtractWarehouse runs the structured and natural strategies, then the
// segment strategy only if neither found anything.
func ExtractWarehouse(message string) WarehouseSlots {
	s := StructuredWarehouseStrategy{}.ExtractWarehouse(message)
	s = s.Merge(NaturalWarehouseStrategy{}.ExtractWarehouse(message))
	if s.Empty() {
		s = SegmentWarehouseStrategy{}.ExtractWarehouse(message)
	}
	return s
}

func textGroup(re *regexp.Regexp, message string) *string {
	m := re.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	return nonEmpty(m[1])
}

func intGroup(re *regexp.Regexp, message string) *int {
	m := re.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
