package value

import "github.com/arloliu/sbekit/format"

func (Required[T]) Kind() format.Kind { return format.KindRequired }
func (Optional[T]) Kind() format.Kind { return format.KindOptional }
