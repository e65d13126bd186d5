/*
Package txdata builds call payloads for the ENS contracts. Every function
here is a pure encoder: it maps already-validated parameters to the exact
calldata for one contract method (or, for MakeCommitment, to the local
commitment hash) and performs no network I/O. Higher layers pick the target
address and submit.
*/
package txdata

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const registryABIJSON = `[
{"type":"function","name":"resolver","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"owner","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"setResolver","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"resolver","type":"address"}],"outputs":[]},
{"type":"function","name":"setOwner","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"owner","type":"address"}],"outputs":[]},
{"type":"function","name":"setSubnodeOwner","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"label","type":"bytes32"},{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"bytes32"}]},
{"type":"function","name":"setSubnodeRecord","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"label","type":"bytes32"},{"name":"owner","type":"address"},{"name":"resolver","type":"address"},{"name":"ttl","type":"uint64"}],"outputs":[]},
{"type":"function","name":"setRecord","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"owner","type":"address"},{"name":"resolver","type":"address"},{"name":"ttl","type":"uint64"}],"outputs":[]}
]`

const resolverABIJSON = `[
{"type":"function","name":"setAddr","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"coinType","type":"uint256"},{"name":"a","type":"bytes"}],"outputs":[]},
{"type":"function","name":"setText","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"key","type":"string"},{"name":"value","type":"string"}],"outputs":[]},
{"type":"function","name":"setContenthash","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"hash","type":"bytes"}],"outputs":[]},
{"type":"function","name":"setABI","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"contentType","type":"uint256"},{"name":"data","type":"bytes"}],"outputs":[]},
{"type":"function","name":"clearRecords","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"}],"outputs":[]},
{"type":"function","name":"multicallWithNodeCheck","stateMutability":"nonpayable","inputs":[{"name":"nodehash","type":"bytes32"},{"name":"data","type":"bytes[]"}],"outputs":[{"name":"results","type":"bytes[]"}]}
]`

// rentPrice actually returns a (base, premium) struct; two flat uint256
// outputs decode identically for a static tuple.
const controllerABIJSON = `[
{"type":"function","name":"rentPrice","stateMutability":"view","inputs":[{"name":"name","type":"string"},{"name":"duration","type":"uint256"}],"outputs":[{"name":"base","type":"uint256"},{"name":"premium","type":"uint256"}]},
{"type":"function","name":"commit","stateMutability":"nonpayable","inputs":[{"name":"commitment","type":"bytes32"}],"outputs":[]},
{"type":"function","name":"register","stateMutability":"payable","inputs":[{"name":"name","type":"string"},{"name":"owner","type":"address"},{"name":"duration","type":"uint256"},{"name":"secret","type":"bytes32"},{"name":"resolver","type":"address"},{"name":"data","type":"bytes[]"},{"name":"reverseRecord","type":"bool"},{"name":"ownerControlledFuses","type":"uint16"}],"outputs":[]},
{"type":"function","name":"renew","stateMutability":"payable","inputs":[{"name":"name","type":"string"},{"name":"duration","type":"uint256"}],"outputs":[]}
]`

const registrarABIJSON = `[
{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
{"type":"function","name":"reclaim","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"},{"name":"owner","type":"address"}],"outputs":[]},
{"type":"function","name":"nameExpires","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const wrapperABIJSON = `[
{"type":"function","name":"wrap","stateMutability":"nonpayable","inputs":[{"name":"name","type":"bytes"},{"name":"wrappedOwner","type":"address"},{"name":"resolver","type":"address"}],"outputs":[]},
{"type":"function","name":"wrapETH2LD","stateMutability":"nonpayable","inputs":[{"name":"label","type":"string"},{"name":"wrappedOwner","type":"address"},{"name":"ownerControlledFuses","type":"uint16"},{"name":"resolver","type":"address"}],"outputs":[{"name":"expiry","type":"uint64"}]},
{"type":"function","name":"unwrap","stateMutability":"nonpayable","inputs":[{"name":"parentNode","type":"bytes32"},{"name":"labelhash","type":"bytes32"},{"name":"controller","type":"address"}],"outputs":[]},
{"type":"function","name":"unwrapETH2LD","stateMutability":"nonpayable","inputs":[{"name":"labelhash","type":"bytes32"},{"name":"registrant","type":"address"},{"name":"controller","type":"address"}],"outputs":[]},
{"type":"function","name":"setFuses","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"ownerControlledFuses","type":"uint16"}],"outputs":[{"name":"","type":"uint32"}]},
{"type":"function","name":"setChildFuses","stateMutability":"nonpayable","inputs":[{"name":"parentNode","type":"bytes32"},{"name":"labelhash","type":"bytes32"},{"name":"fuses","type":"uint32"},{"name":"expiry","type":"uint64"}],"outputs":[]},
{"type":"function","name":"setSubnodeOwner","stateMutability":"nonpayable","inputs":[{"name":"parentNode","type":"bytes32"},{"name":"label","type":"string"},{"name":"owner","type":"address"},{"name":"fuses","type":"uint32"},{"name":"expiry","type":"uint64"}],"outputs":[{"name":"node","type":"bytes32"}]},
{"type":"function","name":"setSubnodeRecord","stateMutability":"nonpayable","inputs":[{"name":"parentNode","type":"bytes32"},{"name":"label","type":"string"},{"name":"owner","type":"address"},{"name":"resolver","type":"address"},{"name":"ttl","type":"uint64"},{"name":"fuses","type":"uint32"},{"name":"expiry","type":"uint64"}],"outputs":[{"name":"node","type":"bytes32"}]},
{"type":"function","name":"setRecord","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"owner","type":"address"},{"name":"resolver","type":"address"},{"name":"ttl","type":"uint64"}],"outputs":[]},
{"type":"function","name":"setResolver","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"resolver","type":"address"}],"outputs":[]},
{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"data","type":"bytes"}],"outputs":[]},
{"type":"function","name":"getData","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"owner","type":"address"},{"name":"fuses","type":"uint32"},{"name":"expiry","type":"uint64"}]}
]`

const reverseABIJSON = `[
{"type":"function","name":"setName","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"}],"outputs":[{"name":"","type":"bytes32"}]},
{"type":"function","name":"setNameForAddr","stateMutability":"nonpayable","inputs":[{"name":"addr","type":"address"},{"name":"owner","type":"address"},{"name":"resolver","type":"address"},{"name":"name","type":"string"}],"outputs":[{"name":"","type":"bytes32"}]}
]`

const bulkRenewalABIJSON = `[
{"type":"function","name":"renewAll","stateMutability":"payable","inputs":[{"name":"names","type":"string[]"},{"name":"duration","type":"uint256"}],"outputs":[]}
]`

// Parsed ABIs of the contracts this package encodes calls for. Exported so
// that callers can decode calldata and read-call results against the same
// definitions.
var (
	Registry    = mustParse(registryABIJSON)
	Resolver    = mustParse(resolverABIJSON)
	Controller  = mustParse(controllerABIJSON)
	Registrar   = mustParse(registrarABIJSON)
	Wrapper     = mustParse(wrapperABIJSON)
	Reverse     = mustParse(reverseABIJSON)
	BulkRenewal = mustParse(bulkRenewalABIJSON)
)

func mustParse(s string) abi.ABI {
	a, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return a
}
