package value

// Kind is the active variant of a Value. The zero Kind is KindInvalid.
type Kind int

const (
	KindInvalid Kind = iota
	KindUndefined
	KindBool
	KindInt
	KindDouble
	KindString
	KindDate
	KindList
	KindMap
	KindCustom
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindUndefined: "undefined",
	KindBool:      "bool",
	KindInt:       "int",
	KindDouble:    "double",
	KindString:    "string",
	KindDate:      "date",
	KindList:      "list",
	KindMap:       "map",
	KindCustom:    "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
