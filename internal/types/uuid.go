package types

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex req_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_PRODUCT              = "prod"
	UUID_PREFIX_CATEGORY             = "cat"
	UUID_PREFIX_CART_ITEM            = "cart"
	UUID_PREFIX_ORDER                = "order"
	UUID_PREFIX_ORDER_ITEM           = "order_line"
	UUID_PREFIX_ORDER_STATUS_HISTORY = "osh"
	UUID_PREFIX_SERVICE_REQUEST      = "req"
	UUID_PREFIX_DOCUMENT             = "doc"
	UUID_PREFIX_NOTIFICATION_EVENT   = "notif"
	UUID_PREFIX_USER                 = "user"
)

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// generateNumber builds a human-readable reference token of the form
// <prefix>-<yyyymmdd>-<random>. The random component comes from shortid
// so two calls in the same day never collide.
func generateNumber(prefix string, now time.Time) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		// shortid only errors on clock skew; fall back to a ULID slice
		id = GenerateUUID()[20:]
	}
	id = strings.ToUpper(strings.NewReplacer("-", "", "_", "").Replace(id))

	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), id)
}

// GenerateRequestNumber returns the immutable human-readable reference
// assigned to a service request at creation, ex REQ-20250115-X4K9QZ.
func GenerateRequestNumber() string {
	return generateNumber("REQ", time.Now())
}

// GenerateOrderNumber returns the human-readable reference assigned to a
// shop order at checkout, ex ORD-20250115-B7MPWT.
func GenerateOrderNumber() string {
	return generateNumber("ORD", time.Now())
}
