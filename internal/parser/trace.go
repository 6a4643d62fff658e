package parser

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("sable.parser")

// trace records grammar-rule entries at debug level. It stays silent unless
// the host raises commonlog's verbosity, e.g. commonlog.Configure(1, nil).
func (p *Parser) trace(rule string) {
	if p.lookahead == nil {
		log.Debugf("%s: at end of input", rule)
		return
	}
	log.Debugf("%s: lookahead %s %q", rule, p.lookahead.Type, p.lookahead.Lexeme)
}
