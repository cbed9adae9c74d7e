package settings

import (
	"fmt"
	"log"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/go-viper/mapstructure/v2"
)

// HumanReadableBytes is a byte count that can be configured as "64Ki", "256MiB", "1GB" or a plain number.
type HumanReadableBytes uint64

func (b HumanReadableBytes) String() string {
	return humanize.IBytes(uint64(b))
}

// HumanToBytes parses a human readable size. A bare "Ki"/"Mi" suffix is treated as KiB/MiB.
func HumanToBytes(s string) (HumanReadableBytes, error) {
	if len(s) > 0 && s[len(s)-1] == 'i' {
		s += "B"
	}
	val, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}
	return HumanReadableBytes(val), nil
}

// HumanToBytesFatal is HumanToBytes for constants known to be valid.
func HumanToBytesFatal(s string) HumanReadableBytes {
	val, err := HumanToBytes(s)
	if err != nil {
		log.Fatal(err)
	}
	return val
}

// HumanReadableBytesHookFunc decodes strings into HumanReadableBytes.
func HumanReadableBytesHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(HumanReadableBytes(0)) || f.Kind() != reflect.String {
			return data, nil
		}
		return HumanToBytes(data.(string))
	}
}
