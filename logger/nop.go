package logger

type nopLogger struct{}

// Nop returns logger without hooks
func Nop() Logger {
	return &nopLogger{}
}

func (n *nopLogger) DeclarationLowered() DeclarationLowered { return nil }

func (n *nopLogger) DeclarationSkipped() DeclarationSkipped { return nil }

func (n *nopLogger) TypeRegistered() TypeRegistered { return nil }

func (n *nopLogger) PassTime() PassTime { return nil }

func (n *nopLogger) Log() Log { return nil }
