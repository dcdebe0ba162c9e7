package prime

import "github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"

var reference1024 = bigint.MustParse("13698031845839681324328863941416858895212053818948" +
	"36900690043939577649957413827537479986216755901817" +
	"99928491177850961633103924955359287791970608284439" +
	"51949471681869403286332789160304218068454389850776" +
	"01264030944684656537615523805322490517494926041664" +
	"52495487230110529227753993037579156704301830605049" +
	"438139121")

// Reference1024 returns a fixed 1024-bit prime, used as the modulus of the
// powmod comparison.
func Reference1024() *bigint.Int {
	return reference1024.Clone()
}
