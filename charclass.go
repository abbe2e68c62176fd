package priority

import "strings"

type charClass int

const (
	cOther charClass = iota
	cToken           // may appear in an item token
	cSpace           // \s in the item grammar
)

var byteClass [256]charClass

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		switch {
		case (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.IndexByte("/*-", b) != -1:
			byteClass[b] = cToken
		case strings.IndexByte("\t\n\f\r ", b) != -1:
			byteClass[b] = cSpace
		}
	}
}
