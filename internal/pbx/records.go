package pbx

import "fmt"

// Record line formats must match the pbxproj grammar byte for byte or
// Xcode refuses to open the project.
const (
	fileRefLineFmt   = "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = %s; sourceTree = \"<group>\"; };\n"
	buildFileLineFmt = "\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n"
	groupChildFmt    = "\t\t\t\t%s /* %s */,\n"
	phaseEntryFmt    = "\t\t\t\t%s /* %s in Sources */,\n"
)

func fileRefLine(e NewEntry) string {
	return fmt.Sprintf(fileRefLineFmt, e.RefID, e.Name, e.Name)
}

func buildFileLine(e NewEntry) string {
	return fmt.Sprintf(buildFileLineFmt, e.BuildID, e.Name, e.RefID, e.Name)
}

func groupChildLine(e NewEntry) string {
	return fmt.Sprintf(groupChildFmt, e.RefID, e.Name)
}

func phaseEntryLine(e NewEntry) string {
	return fmt.Sprintf(phaseEntryFmt, e.BuildID, e.Name)
}
