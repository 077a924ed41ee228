package processor

import (
	"github.com/golang/snappy"
)

// CompressPayload сжимает исходный JSON предложения перед сохранением в БД
func CompressPayload(data []byte) []byte {
	return snappy.Encode(nil, data)
}

// DecompressPayload распаковывает сохраненный JSON предложения
func DecompressPayload(data []byte) ([]byte, error) {
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}
