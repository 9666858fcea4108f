package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
)

// RandomCredentialNumber generates a random 32-bit Wiegand credential number (0 to 4294967295)
func RandomCredentialNumber() uint32 {
	var num uint32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random credential number failed")
	}

	return num
}

// RandomPinCode generates a 5-digit backup PIN in [10000, 99999]
func RandomPinCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		panic("generate random pin code failed")
	}

	return fmt.Sprintf("%d", 10000+n.Int64())
}
