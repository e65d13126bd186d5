package txdata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RegistrarSafeTransferFrom encodes the ERC-721 safeTransferFrom(from, to,
// tokenId) on the .eth base registrar.
func RegistrarSafeTransferFrom(from, to common.Address, tokenID *big.Int) ([]byte, error) {
	return Registrar.Pack("safeTransferFrom", from, to, tokenID)
}

// RegistrarReclaim encodes reclaim(id, owner), which resets registry
// ownership of a .eth name to the given address without moving the token.
func RegistrarReclaim(tokenID *big.Int, owner common.Address) ([]byte, error) {
	return Registrar.Pack("reclaim", tokenID, owner)
}

// RegistrarNameExpiresCall encodes the nameExpires(id) read call.
func RegistrarNameExpiresCall(tokenID *big.Int) ([]byte, error) {
	return Registrar.Pack("nameExpires", tokenID)
}
