package middleware

import "github.com/aretw0/dectab/pkg/ports"

// Middleware allows wrapping a TableStore to add behavior.
type Middleware func(ports.TableStore) ports.TableStore
