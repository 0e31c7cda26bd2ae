// Package platform provides the family enumeration and fallback
// collaborators used by fontsel.Resolver:
//
//   - StaticMap: a fixed family name to font file table
//   - Directory: families discovered by scanning font directories
//   - Chain: tries several enumerators in order
//   - ScriptTable: fallback family names per Unicode script
package platform
