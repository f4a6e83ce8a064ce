/*Package interval converts properly paired alignment records into genomic
  intervals spanning the whole sequenced fragment.
  Each fragment is reported once, from its first read, as a BEDPE3 line
  "chrom\tstart\tend", where start is the leftmost of the read and mate
  positions and end is start plus the absolute template length.
*/
package interval
