package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout VarScanner and it's
	associated services.
*/
type AssemblyId string
