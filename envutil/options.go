package envutil

// Option is a function which modifies a Reader. It's used by
// functions like String and Bool so that the caller can easily
// provide defaults and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default allows you to provide a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the Reader's value. If f returns an error,
// the Reader carries that error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}
