package qr

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/menuly/restaurant-admin/models"
	qrcode "github.com/skip2/go-qrcode"
)

// ImageSize is the side length of generated QR rasters in pixels.
const ImageSize = 256

// GenerateBatch produces one TableCode per table, numbered 1..count in
// order. A count below 1 is treated as 1. The Value URL is built from
// the inputs alone, so regenerating with the same base URL, restaurant
// and count yields byte-identical Values.
func GenerateBatch(baseURL, restaurantID string, count int) ([]models.TableCode, error) {
	if count < 1 {
		count = 1
	}
	codes := make([]models.TableCode, 0, count)
	for table := 1; table <= count; table++ {
		value := Value(baseURL, restaurantID, table)
		png, err := qrcode.Encode(value, qrcode.Medium, ImageSize)
		if err != nil {
			return nil, fmt.Errorf("encode qr for table %d: %w", table, err)
		}
		codes = append(codes, models.TableCode{Table: table, Value: value, Image: png})
	}
	return codes, nil
}

// Value is the exact URL a table's QR encodes, with the table number
// as a query parameter. url.Values encodes deterministically (keys in
// sorted order), so equal inputs keep yielding byte-identical Values.
func Value(baseURL, restaurantID string, table int) string {
	q := url.Values{
		"restaurantId": {restaurantID},
		"table":        {strconv.Itoa(table)},
	}
	return baseURL + "/menu?" + q.Encode()
}
